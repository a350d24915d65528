// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wedding - two party consent agreements
//
// a user's partner record lives at an address derived from the user
// alone and a wedding lives at an address derived from the two partner
// records, so at most one wedding can exist for a pair and a user can
// be in only one wedding at a time; no registry or lock is needed
//
// state of a wedding:
//
//   created --answer(true)--> marrying --both true--> married
//   married --divorce--> divorcing --divorce, other false--> (closed)
//   created|marrying --cancel--> (closed)
package wedding

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/transaction"
)

// Program - runs instructions against a ledger
type Program struct {
	log    *logger.L
	ledger *ledger.Ledger
}

// New - program bound to a ledger
func New(l *ledger.Ledger) *Program {
	return &Program{
		log:    logger.New("wedding"),
		ledger: l,
	}
}

// Ledger - the underlying ledger
func (p *Program) Ledger() *ledger.Ledger {
	return p.ledger
}

// Submit - decode, verify and run a packed transaction
func (p *Program) Submit(packed transaction.Packed) (*ledger.Receipt, error) {
	tx, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	return p.Process(tx)
}

// Process - run one signed transaction atomically
func (p *Program) Process(tx *transaction.Transaction) (*ledger.Receipt, error) {
	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}

	signers := make([]*account.Account, 0, len(tx.Signatures))
	signers = append(signers, tx.Instruction.Signers()...)

	receipt, err := p.ledger.Execute(packed, signers, func(c *ledger.Context) error {
		return dispatch(c, tx.Instruction)
	})
	if nil != err {
		p.log.Debugf("%s rejected: %s", tx.Instruction.Tag(), err)
		return nil, err
	}
	p.log.Infof("%s: tx: %s", tx.Instruction.Tag(), receipt.TxId)
	return receipt, nil
}

func dispatch(c *ledger.Context, instruction transaction.Instruction) error {
	switch i := instruction.(type) {
	case *transaction.SetupWedding:
		return SetupWedding(c, i)
	case *transaction.SetupPartner:
		return SetupPartner(c, i)
	case *transaction.GiveAnswer:
		return GiveAnswer(c, i)
	case *transaction.Divorce:
		return Divorce(c, i)
	case *transaction.CancelWedding:
		return CancelWedding(c, i)
	case *transaction.ClosePartner:
		return ClosePartner(c, i)
	default:
		return fault.ErrUnknownInstruction
	}
}
