// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// Context - the view of the ledger inside one transaction
type Context struct {
	ledger  *Ledger
	signers []*account.Account
}

// Program - address of the running program
func (c *Context) Program() address.Address {
	return c.ledger.program
}

// Derive - record address for the program
func (c *Context) Derive(tag string, seeds ...[]byte) (address.Address, error) {
	a, _, err := address.Derive(c.ledger.program, []byte(tag), seeds...)
	return a, err
}

// IsSigner - the transaction carries a valid signature from this identity
func (c *Context) IsSigner(identity *account.Account) bool {
	if nil == identity {
		return false
	}
	for _, s := range c.signers {
		if s.Equal(identity) {
			return true
		}
	}
	return false
}

// Load - state at an address, an absent address is an empty entry
func (c *Context) Load(a address.Address) *Entry {
	e := c.ledger.get(a)
	if nil == e {
		return &Entry{}
	}
	return e
}

// Create - allocate a program owned record funded by payer
//
// the deposit is the minimum balance for len(data) and the target must
// carry neither lamports nor data
func (c *Context) Create(payer *account.Account, a address.Address, data []byte) error {
	if !c.IsSigner(payer) {
		return fault.ErrMissingSignature
	}

	target := c.Load(a)
	if !target.IsEmpty() {
		return fault.ErrAccountAlreadyInUse
	}

	deposit := MinimumBalance(len(data))
	payerAddress := payer.Address()
	funds := c.Load(payerAddress)
	if funds.Lamports < deposit {
		return fault.ErrInsufficientFunds
	}
	funds.Lamports -= deposit
	c.store(payerAddress, funds)

	stored := make([]byte, len(data))
	copy(stored, data)
	c.ledger.put(a, &Entry{
		Lamports: deposit,
		Owner:    c.ledger.program,
		Data:     stored,
	})
	return nil
}

// Write - overwrite a record in place
//
// the allocation never changes, shorter data is zero padded
func (c *Context) Write(a address.Address, data []byte) error {
	e := c.ledger.get(a)
	if nil == e {
		return fault.ErrRecordNotFound
	}
	if e.Owner != c.ledger.program {
		return fault.ErrNotProgramOwned
	}
	if len(data) > len(e.Data) {
		return fault.ErrRecordTooLarge
	}
	copy(e.Data, data)
	for i := len(data); i < len(e.Data); i += 1 {
		e.Data[i] = 0
	}
	c.ledger.put(a, e)
	return nil
}

// Close - destroy a record moving its whole deposit to refund
func (c *Context) Close(a address.Address, refund address.Address) error {
	e := c.ledger.get(a)
	if nil == e {
		return fault.ErrRecordNotFound
	}
	if e.Owner != c.ledger.program {
		return fault.ErrNotProgramOwned
	}
	if a == refund {
		return fault.ErrAccountAlreadyInUse
	}

	target := c.Load(refund)
	target.Lamports += e.Lamports
	c.ledger.remove(a)
	c.store(refund, target)
	return nil
}

// an entry emptied of everything is removed
func (c *Context) store(a address.Address, e *Entry) {
	if e.IsEmpty() && address.Zero == e.Owner {
		c.ledger.remove(a)
		return
	}
	c.ledger.put(a, e)
}
