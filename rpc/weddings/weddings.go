// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weddings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/rpc/ratelimit"
	"github.com/bitmark-inc/weddingd/transaction"
	"github.com/bitmark-inc/weddingd/wedding"
)

const (
	rateLimitWedding = 100
	rateBurstWedding = 50
	rateLimitPartner = 200
	rateBurstPartner = 100
)

// Program - the parts of the wedding program used by the RPC handlers
type Program interface {
	Submit(transaction.Packed) (*ledger.Receipt, error)
	Wedding(*account.Account, *account.Account) (*wedding.WeddingState, error)
	Partner(*account.Account) (*wedding.PartnerState, error)
}

// Wedding - type for the RPC
type Wedding struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Program Program
}

// New - wedding RPC handler
func New(log *logger.L, program Program) *Wedding {
	return &Wedding{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitWedding, rateBurstWedding),
		Program: program,
	}
}

// SubmitArguments - a signed and packed transaction
type SubmitArguments struct {
	Transaction transaction.Packed `json:"transaction"`
}

// SubmitReply - where the transaction landed in the journal
type SubmitReply struct {
	TxId     ledger.Digest `json:"txId"`
	Sequence uint64        `json:"sequence,string"`
	Chain    ledger.Digest `json:"chain"`
}

// Submit - run one wedding instruction
func (w *Wedding) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Transaction) {
		return fault.ErrMissingParameters
	}

	w.Log.Infof("submit: %x", arguments.Transaction)

	receipt, err := w.Program.Submit(arguments.Transaction)
	if nil != err {
		w.Log.Debugf("submit error: %s", err)
		return err
	}

	reply.TxId = receipt.TxId
	reply.Sequence = receipt.Sequence
	reply.Chain = receipt.Chain
	return nil
}

// GetArguments - the two participants of a wedding
type GetArguments struct {
	UserA *account.Account `json:"userA"`
	UserB *account.Account `json:"userB"`
}

// Get - read a wedding record
func (w *Wedding) Get(arguments *GetArguments, reply *wedding.WeddingState) error {

	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.UserA || nil == arguments.UserB {
		return fault.ErrMissingParameters
	}

	w.Log.Debugf("get: %s + %s", arguments.UserA, arguments.UserB)

	state, err := w.Program.Wedding(arguments.UserA, arguments.UserB)
	if nil != err {
		return err
	}
	*reply = *state
	return nil
}

// ---

// Partner - type for the RPC
type Partner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Program Program
}

// NewPartner - partner RPC handler
func NewPartner(log *logger.L, program Program) *Partner {
	return &Partner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPartner, rateBurstPartner),
		Program: program,
	}
}

// PartnerArguments - the owner of a partner record
type PartnerArguments struct {
	User *account.Account `json:"user"`
}

// Get - read a partner record
func (p *Partner) Get(arguments *PartnerArguments, reply *wedding.PartnerState) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.User {
		return fault.ErrMissingParameters
	}

	state, err := p.Program.Partner(arguments.User)
	if nil != err {
		return err
	}
	*reply = *state
	return nil
}
