// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/rpc/ratelimit"
	"github.com/bitmark-inc/weddingd/transaction"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Journal - committed transaction lookup
type Journal interface {
	Journal(ledger.Digest) (*ledger.JournalEntry, error)
}

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Journal Journal
}

// Arguments - arguments for status RPC request
type Arguments struct {
	TxId ledger.Digest `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status      string             `json:"status"`
	Sequence    uint64             `json:"sequence,string"`
	Chain       ledger.Digest      `json:"chain"`
	Instruction string             `json:"instruction"`
	Nonce       uint64             `json:"nonce,string"`
	Packed      transaction.Packed `json:"packed"`
}

// status values
const (
	statusCommitted = "committed"
	statusUnknown   = "unknown"
)

// New - transaction RPC handler
func New(log *logger.L, start time.Time, journal Journal) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Start:   start,
		Journal: journal,
	}
}

// Status - query transaction status
//
// a transaction that failed was never journaled, so it reports unknown
func (t *Transaction) Status(arguments *Arguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Journal {
		return fault.ErrNotInitialised
	}

	entry, err := t.Journal.Journal(arguments.TxId)
	if fault.ErrTransactionNotFound == err {
		reply.Status = statusUnknown
		return nil
	}
	if nil != err {
		return err
	}

	packed := transaction.Packed(entry.Packed)
	tx, err := packed.Unpack()
	if nil != err {
		t.Log.Criticalf("journaled transaction: %s does not unpack: %s", arguments.TxId, err)
		return err
	}

	reply.Status = statusCommitted
	reply.Sequence = entry.Sequence
	reply.Chain = entry.Chain
	reply.Instruction = tx.Instruction.Tag().String()
	reply.Nonce = tx.Nonce
	reply.Packed = packed
	return nil
}
