// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - single node host for the program
//
// every transaction runs under one lock inside a storage batch, so
// transactions are totally ordered and either commit completely or
// leave no trace
package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/chain"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/storage"
)

// Handler - the body of one transaction
type Handler func(*Context) error

// Ledger - the host state
type Ledger struct {
	sync.Mutex

	log     *logger.L
	chain   string
	program address.Address
	db      *storage.Database
}

// New - attach a ledger to an open database
func New(chainName string, db *storage.Database) (*Ledger, error) {
	if !chain.Valid(chainName) {
		return nil, fault.ErrInvalidChain
	}
	program, err := address.FromBase58(chain.Program(chainName))
	if nil != err {
		return nil, err
	}

	l := &Ledger{
		log:     logger.New("ledger"),
		chain:   chainName,
		program: program,
		db:      db,
	}
	count, digest := l.Head()
	l.log.Infof("chain: %s  program: %s  transactions: %d  head: %s", chainName, program, count, digest)
	return l, nil
}

// Chain - name of the chain
func (l *Ledger) Chain() string {
	return l.chain
}

// Program - address mixed into every derived record address
func (l *Ledger) Program() address.Address {
	return l.program
}

// Execute - run one transaction atomically
//
// the transaction id is the digest of packed; a handler error aborts
// every write the handler made
func (l *Ledger) Execute(packed []byte, signers []*account.Account, handler Handler) (*Receipt, error) {
	l.Lock()
	defer l.Unlock()

	txId := NewDigest(packed)
	if l.db.Pool.Transactions.Has(txId[:]) {
		return nil, fault.ErrTransactionAlreadyExists
	}

	access := l.db.Access()
	if err := access.Begin(); nil != err {
		return nil, err
	}

	c := &Context{
		ledger:  l,
		signers: signers,
	}
	if err := handler(c); nil != err {
		access.Abort()
		l.log.Debugf("abort tx: %s  error: %s", txId, err)
		return nil, err
	}

	receipt := l.appendJournal(txId, packed)
	if err := access.Commit(); nil != err {
		l.log.Criticalf("commit tx: %s  error: %s", txId, err)
		return nil, err
	}

	l.log.Infof("commit tx: %s  sequence: %d", txId, receipt.Sequence)
	return &receipt, nil
}

// Get - committed state at an address, nil if absent
func (l *Ledger) Get(a address.Address) *Entry {
	l.Lock()
	defer l.Unlock()
	return l.get(a)
}

// Balance - lamports held at an address
func (l *Ledger) Balance(a address.Address) uint64 {
	e := l.Get(a)
	if nil == e {
		return 0
	}
	return e.Lamports
}

// Airdrop - create lamports at an address, test chains only
func (l *Ledger) Airdrop(a address.Address, lamports uint64) (uint64, error) {
	if !chain.IsTesting(l.chain) {
		return 0, fault.ErrAirdropDisabled
	}
	if 0 == lamports {
		return 0, fault.ErrZeroAmount
	}

	l.Lock()
	defer l.Unlock()

	access := l.db.Access()
	if err := access.Begin(); nil != err {
		return 0, err
	}
	e := l.get(a)
	if nil == e {
		e = &Entry{}
	}
	e.Lamports += lamports
	l.put(a, e)
	if err := access.Commit(); nil != err {
		return 0, err
	}

	l.log.Infof("airdrop: %d to: %s", lamports, a)
	return e.Lamports, nil
}

// lock must be held
func (l *Ledger) get(a address.Address) *Entry {
	buffer := l.db.Pool.Accounts.Get(a[:])
	if nil == buffer {
		return nil
	}
	e, err := unpackEntry(buffer)
	logger.PanicIfError("ledger.get", err)
	return e
}

// lock must be held and a batch open
func (l *Ledger) put(a address.Address, e *Entry) {
	l.db.Pool.Accounts.Put(a[:], e.pack())
}

// lock must be held and a batch open
func (l *Ledger) remove(a address.Address) {
	l.db.Pool.Accounts.Delete(a[:])
}
