// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/transaction"
)

// build an instruction for the decrypted current identity, sign it
// and send it to weddingd
func submit(c *cli.Context, build func(m *metadata, user *account.Account) (transaction.Instruction, error)) error {

	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	signer, err := currentSigner(c, m)
	if nil != err {
		return err
	}

	instruction, err := build(m, signer.Account)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "instruction: %s\n", instruction.Tag())
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(signer, instruction)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSetupWedding(c *cli.Context) error {
	return submit(c, func(m *metadata, creator *account.Account) (transaction.Instruction, error) {
		userA, err := checkAccount(m.config, c.String("user-a"))
		if nil != err {
			return nil, err
		}
		userB, err := checkAccount(m.config, c.String("user-b"))
		if nil != err {
			return nil, err
		}
		return &transaction.SetupWedding{
			Creator: creator,
			UserA:   userA,
			UserB:   userB,
		}, nil
	})
}

func runSetupPartner(c *cli.Context) error {
	return submit(c, func(m *metadata, user *account.Account) (transaction.Instruction, error) {
		other, err := checkAccount(m.config, c.String("other"))
		if nil != err {
			return nil, err
		}
		name, err := checkPartnerName(c.String("name"))
		if nil != err {
			return nil, err
		}
		return &transaction.SetupPartner{
			User:  user,
			Other: other,
			Name:  name,
			Vows:  c.String("vows"),
		}, nil
	})
}

func runGiveAnswer(c *cli.Context) error {
	return submit(c, func(m *metadata, user *account.Account) (transaction.Instruction, error) {
		other, err := checkAccount(m.config, c.String("other"))
		if nil != err {
			return nil, err
		}
		yes := c.Bool("yes")
		if yes == c.Bool("no") {
			return nil, ErrAnswerRequired
		}
		return &transaction.GiveAnswer{
			User:   user,
			Other:  other,
			Answer: yes,
		}, nil
	})
}

func runDivorce(c *cli.Context) error {
	return submit(c, func(m *metadata, user *account.Account) (transaction.Instruction, error) {
		other, err := checkAccount(m.config, c.String("other"))
		if nil != err {
			return nil, err
		}
		creator, err := checkOptionalCreator(m, c.String("creator"), user)
		if nil != err {
			return nil, err
		}
		return &transaction.Divorce{
			User:    user,
			Other:   other,
			Creator: creator,
		}, nil
	})
}

func runCancelWedding(c *cli.Context) error {
	return submit(c, func(m *metadata, user *account.Account) (transaction.Instruction, error) {
		userA, err := checkAccount(m.config, c.String("user-a"))
		if nil != err {
			return nil, err
		}
		userB, err := checkAccount(m.config, c.String("user-b"))
		if nil != err {
			return nil, err
		}
		creator, err := checkOptionalCreator(m, c.String("creator"), user)
		if nil != err {
			return nil, err
		}
		return &transaction.CancelWedding{
			User:    user,
			Creator: creator,
			UserA:   userA,
			UserB:   userB,
		}, nil
	})
}

func runClosePartner(c *cli.Context) error {
	return submit(c, func(m *metadata, user *account.Account) (transaction.Instruction, error) {
		other, err := checkAccount(m.config, c.String("other"))
		if nil != err {
			return nil, err
		}
		return &transaction.ClosePartner{
			User:  user,
			Other: other,
		}, nil
	})
}

// blank creator means the signer created the wedding
func checkOptionalCreator(m *metadata, nameOrAccount string, user *account.Account) (*account.Account, error) {
	if "" == nameOrAccount {
		return user, nil
	}
	return checkAccount(m.config, nameOrAccount)
}
