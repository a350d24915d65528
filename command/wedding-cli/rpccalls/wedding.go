// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/keypair"
	"github.com/bitmark-inc/weddingd/rpc/weddings"
	"github.com/bitmark-inc/weddingd/transaction"
	"github.com/bitmark-inc/weddingd/wedding"
)

// Submit - sign an instruction and send it
//
// a random nonce keeps otherwise identical instructions distinct
func (c *Client) Submit(signer *keypair.KeyPair, instruction transaction.Instruction) (*weddings.SubmitReply, error) {

	var n [8]byte
	if _, err := rand.Read(n[:]); nil != err {
		return nil, err
	}

	tx := transaction.New(binary.BigEndian.Uint64(n[:]), instruction)
	if err := tx.Sign(signer); nil != err {
		return nil, err
	}
	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}

	arguments := weddings.SubmitArguments{
		Transaction: packed,
	}
	var reply weddings.SubmitReply
	if err := c.call("Wedding.Submit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetWedding - read the wedding record of two users
func (c *Client) GetWedding(userA *account.Account, userB *account.Account) (*wedding.WeddingState, error) {
	arguments := weddings.GetArguments{
		UserA: userA,
		UserB: userB,
	}
	var reply wedding.WeddingState
	if err := c.call("Wedding.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetPartner - read the partner record of a user
func (c *Client) GetPartner(user *account.Account) (*wedding.PartnerState, error) {
	arguments := weddings.PartnerArguments{
		User: user,
	}
	var reply wedding.PartnerState
	if err := c.call("Partner.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
