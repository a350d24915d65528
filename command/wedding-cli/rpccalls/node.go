// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/rpc/accounts"
	"github.com/bitmark-inc/weddingd/rpc/node"
	rpctransaction "github.com/bitmark-inc/weddingd/rpc/transaction"
)

// GetInfo - request status from weddingd
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Airdrop - fund an address on a test chain
func (c *Client) Airdrop(a address.Address, lamports uint64) (*node.AirdropReply, error) {
	arguments := node.AirdropArguments{
		Address:  a,
		Lamports: lamports,
	}
	var reply node.AirdropReply
	if err := c.call("Node.Airdrop", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Derive - partner and wedding addresses for two users
func (c *Client) Derive(userA *account.Account, userB *account.Account) (*node.DeriveReply, error) {
	arguments := node.DeriveArguments{
		UserA: userA,
		UserB: userB,
	}
	var reply node.DeriveReply
	if err := c.call("Node.Derive", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - lamports held at an address
func (c *Client) GetBalance(a address.Address) (*accounts.BalanceReply, error) {
	arguments := accounts.BalanceArguments{
		Address: a,
	}
	var reply accounts.BalanceReply
	if err := c.call("Account.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransactionStatus - whether a transaction was committed
func (c *Client) GetTransactionStatus(txId ledger.Digest) (*rpctransaction.StatusReply, error) {
	arguments := rpctransaction.Arguments{
		TxId: txId,
	}
	var reply rpctransaction.StatusReply
	if err := c.call("Transaction.Status", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
