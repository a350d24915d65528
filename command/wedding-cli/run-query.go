// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/weddingd/command/wedding-cli/rpccalls"
)

// connect and run a single query, printing its reply
func query(c *cli.Context, run func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error)) error {

	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	// queries default to the current identity when one is set
	identity, _ := currentIdentity(c, m.config)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := run(m, identity, client)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runWedding(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		userA, err := checkOptionalAccount(m.config, c.String("user-a"), identity)
		if nil != err {
			return nil, err
		}
		userB, err := checkAccount(m.config, c.String("user-b"))
		if nil != err {
			return nil, err
		}
		return client.GetWedding(userA, userB)
	})
}

func runPartner(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		user, err := checkOptionalAccount(m.config, c.String("user"), identity)
		if nil != err {
			return nil, err
		}
		return client.GetPartner(user)
	})
}

func runDerive(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		userA, err := checkOptionalAccount(m.config, c.String("user-a"), identity)
		if nil != err {
			return nil, err
		}
		userB, err := checkAccount(m.config, c.String("user-b"))
		if nil != err {
			return nil, err
		}
		return client.Derive(userA, userB)
	})
}

func runBalance(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		owner, err := checkOptionalAccount(m.config, c.String("owner"), identity)
		if nil != err {
			return nil, err
		}
		return client.GetBalance(owner.Address())
	})
}

func runAirdrop(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		owner, err := checkOptionalAccount(m.config, c.String("owner"), identity)
		if nil != err {
			return nil, err
		}
		return client.Airdrop(owner.Address(), c.Uint64("lamports"))
	})
}

func runStatus(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		txId, err := checkTxId(c.String("txid"))
		if nil != err {
			return nil, err
		}
		return client.GetTransactionStatus(txId)
	})
}

func runInfo(c *cli.Context) error {
	return query(c, func(m *metadata, identity string, client *rpccalls.Client) (interface{}, error) {
		return client.GetInfo()
	})
}
