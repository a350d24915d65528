// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {

	otherFlag := cli.StringFlag{
		Name:  "other, o",
		Value: "",
		Usage: "*identity name or account of the other partner `ACCOUNT`",
	}
	creatorFlag := cli.StringFlag{
		Name:  "creator, c",
		Value: "",
		Usage: " identity name or account that created the wedding `ACCOUNT` [default: current identity]",
	}

	return []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise wedding-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*weddingd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: " generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities",
			Action: runList,
		},
		{
			Name:      "setup-wedding",
			Usage:     "start a wedding between two users, current identity pays",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user-a, a",
					Value: "",
					Usage: "*first partner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "user-b, b",
					Value: "",
					Usage: "*second partner `ACCOUNT`",
				},
			},
			Action: runSetupWedding,
		},
		{
			Name:      "setup-partner",
			Usage:     "register current identity as a partner in a wedding",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				otherFlag,
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*partner `NAME`",
				},
				cli.StringFlag{
					Name:  "vows",
					Value: "",
					Usage: " partner `VOWS`",
				},
			},
			Action: runSetupPartner,
		},
		{
			Name:      "answer",
			Usage:     "give or withdraw consent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				otherFlag,
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: " consent to the wedding",
				},
				cli.BoolFlag{
					Name:  "no",
					Usage: " withdraw consent",
				},
			},
			Action: runGiveAnswer,
		},
		{
			Name:      "divorce",
			Usage:     "withdraw from a marriage",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{otherFlag, creatorFlag},
			Action:    runDivorce,
		},
		{
			Name:      "cancel",
			Usage:     "cancel a wedding that is not yet married",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				creatorFlag,
				cli.StringFlag{
					Name:  "user-a, a",
					Value: "",
					Usage: "*first partner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "user-b, b",
					Value: "",
					Usage: "*second partner `ACCOUNT`",
				},
			},
			Action: runCancelWedding,
		},
		{
			Name:      "close-partner",
			Usage:     "close the current identity's partner record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{otherFlag},
			Action:    runClosePartner,
		},
		{
			Name:      "wedding",
			Usage:     "display a wedding record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user-a, a",
					Value: "",
					Usage: " first partner `ACCOUNT` [default: current identity]",
				},
				cli.StringFlag{
					Name:  "user-b, b",
					Value: "",
					Usage: "*second partner `ACCOUNT`",
				},
			},
			Action: runWedding,
		},
		{
			Name:      "partner",
			Usage:     "display a partner record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user, u",
					Value: "",
					Usage: " partner `ACCOUNT` [default: current identity]",
				},
			},
			Action: runPartner,
		},
		{
			Name:      "derive",
			Usage:     "display partner and wedding addresses of two users",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user-a, a",
					Value: "",
					Usage: " first partner `ACCOUNT` [default: current identity]",
				},
				cli.StringFlag{
					Name:  "user-b, b",
					Value: "",
					Usage: "*second partner `ACCOUNT`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "balance",
			Usage:     "display lamports held",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` [default: current identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "fund an account (testing and local only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` [default: current identity]",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 1000000000,
					Usage: " amount to fund `COUNT`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display weddingd status",
			Action: runInfo,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
