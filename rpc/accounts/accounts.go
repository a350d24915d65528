// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/rpc/ratelimit"
)

const (
	rateLimitAccount = 200
	rateBurstAccount = 100
)

// Balances - lamport lookup
type Balances interface {
	Balance(address.Address) uint64
}

// Account - type for the RPC
type Account struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Balances Balances
}

// New - account RPC handler
func New(log *logger.L, balances Balances) *Account {
	return &Account{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		Balances: balances,
	}
}

// BalanceArguments - any ledger address
type BalanceArguments struct {
	Address address.Address `json:"address"`
}

// BalanceReply - lamports held
type BalanceReply struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports,string"`
}

// Balance - lamports held at an address, zero if absent
func (a *Account) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	reply.Address = arguments.Address
	reply.Lamports = a.Balances.Balance(arguments.Address)
	return nil
}
