// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/record"
	"github.com/bitmark-inc/weddingd/transaction"
	"github.com/bitmark-inc/weddingd/wedding"
)

func TestEndToEnd(t *testing.T) {
	p := newProgram(t)
	l := p.Ledger()
	alice := fixtures.Alice
	bob := fixtures.Bob
	carol := fixtures.Carol

	weddingDeposit := ledger.MinimumBalance(record.WeddingSpace)
	partnerDeposit := ledger.MinimumBalance(record.PartnerSpace("Alice", "to have and to hold"))

	readyWedding(t, p)
	assert.Equal(t, record.Created, status(t, p), "wrong status after setup")
	assert.Equal(t, uint64(funding)-weddingDeposit, l.Balance(carol.Account.Address()), "creator not debited")
	assert.Equal(t, uint64(funding)-partnerDeposit, l.Balance(alice.Account.Address()), "alice not debited")

	w, err := p.Wedding(bob.Account, alice.Account)
	require.Nil(t, err, "read wedding")
	assert.True(t, w.Wedding.Creator.Equal(carol.Account), "wrong creator")
	assert.Equal(t, weddingDeposit, w.Deposit, "wrong wedding deposit")

	a, err := p.Partner(alice.Account)
	require.Nil(t, err, "read alice")
	assert.Equal(t, w.Address, a.Partner.Wedding, "alice refers to another wedding")
	assert.Equal(t, "Alice", a.Partner.Name, "wrong name")
	assert.True(t, w.Wedding.HasPartner(a.Address), "alice not in a slot")

	require.Nil(t, answer(p, alice, bob, true), "alice answers")
	assert.Equal(t, record.Marrying, status(t, p), "wrong status after first yes")

	require.Nil(t, answer(p, bob, alice, true), "bob answers")
	assert.Equal(t, record.Married, status(t, p), "wrong status after second yes")

	require.Nil(t, divorce(p, alice, bob), "alice divorces")
	assert.Equal(t, record.Divorcing, status(t, p), "wrong status after first divorce")
	assert.False(t, consent(t, p, alice), "alice still consents")
	assert.True(t, consent(t, p, bob), "bob consent changed")

	require.Nil(t, divorce(p, bob, alice), "bob divorces")
	_, err = p.Wedding(alice.Account, bob.Account)
	assert.Equal(t, fault.ErrRecordNotFound, err, "wedding survived")
	assert.Equal(t, uint64(funding), l.Balance(carol.Account.Address()), "creator not refunded")

	require.Nil(t, closePartner(p, alice, bob), "alice closes")
	require.Nil(t, closePartner(p, bob, alice), "bob closes")
	assert.Equal(t, uint64(funding), l.Balance(alice.Account.Address()), "alice not refunded")
	assert.Equal(t, uint64(funding), l.Balance(bob.Account.Address()), "bob not refunded")

	count, _ := l.Head()
	assert.Equal(t, uint64(9), count, "wrong journal length")
	_, err = l.Verify()
	assert.Nil(t, err, "journal does not verify")
}

func TestSetupWeddingRejectsOccupiedSlot(t *testing.T) {
	p := newProgram(t)

	// deposit with no data
	a, err := wedding.PartnerAddress(p.Ledger().Program(), fixtures.Bob.Account)
	require.Nil(t, err, "derive")
	_, err = p.Ledger().Airdrop(a, 1)
	require.Nil(t, err, "airdrop")

	err = setupWedding(p)
	assert.Equal(t, fault.PartnerBalanceNotZero, err, "funded slot accepted")
	_, err = p.Wedding(fixtures.Alice.Account, fixtures.Bob.Account)
	assert.Equal(t, fault.ErrRecordNotFound, err, "wedding created")
	assert.Equal(t, uint64(funding), p.Ledger().Balance(fixtures.Carol.Account.Address()), "creator debited")
}

func TestSetupWeddingRejectsRegisteredPartner(t *testing.T) {
	p := newProgram(t)

	require.Nil(t, setupPartner(p, fixtures.Alice, fixtures.Bob, "Alice"), "setup alice")
	err := setupWedding(p)
	assert.Equal(t, fault.PartnerDataNotEmpty, err, "registered slot accepted")

	// alice already in another wedding blocks a second one
	err = submit(p, fixtures.Dave, &transaction.SetupWedding{
		Creator: fixtures.Dave.Account,
		UserA:   fixtures.Alice.Account,
		UserB:   fixtures.Carol.Account,
	})
	assert.Equal(t, fault.PartnerDataNotEmpty, err, "second wedding accepted")
}

func TestSetupWeddingTwice(t *testing.T) {
	p := newProgram(t)
	require.Nil(t, setupWedding(p), "first")

	err := submit(p, fixtures.Dave, &transaction.SetupWedding{
		Creator: fixtures.Dave.Account,
		UserA:   fixtures.Bob.Account,
		UserB:   fixtures.Alice.Account,
	})
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "second wedding for the pair")
}

func TestSamePartner(t *testing.T) {
	p := newProgram(t)
	err := submit(p, fixtures.Carol, &transaction.SetupWedding{
		Creator: fixtures.Carol.Account,
		UserA:   fixtures.Alice.Account,
		UserB:   fixtures.Alice.Account,
	})
	assert.Equal(t, fault.ErrSamePartner, err, "self wedding")

	err = setupPartner(p, fixtures.Alice, fixtures.Alice, "Alice")
	assert.Equal(t, fault.ErrSamePartner, err, "self partner")
}

func TestSetupPartnerBeforeWedding(t *testing.T) {
	p := newProgram(t)
	require.Nil(t, setupPartner(p, fixtures.Alice, fixtures.Bob, "Alice"), "setup alice")

	err := setupPartner(p, fixtures.Alice, fixtures.Carol, "Alice")
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "second partner record")

	err = setupPartner(p, fixtures.Bob, fixtures.Alice, "")
	assert.Equal(t, fault.ErrNameTooShort, err, "empty name")
}

func TestGiveAnswer(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob

	t.Run("created", func(t *testing.T) {
		p := newProgram(t)
		readyWedding(t, p)

		require.Nil(t, answer(p, alice, bob, false), "no")
		assert.Equal(t, record.Created, status(t, p), "no moved status")
		assert.False(t, consent(t, p, alice), "wrong consent")

		require.Nil(t, answer(p, alice, bob, true), "yes")
		assert.Equal(t, record.Marrying, status(t, p), "yes did not move status")
		assert.True(t, consent(t, p, alice), "wrong consent")
	})

	t.Run("marrying", func(t *testing.T) {
		p := newProgram(t)
		readyWedding(t, p)
		require.Nil(t, answer(p, alice, bob, true), "alice yes")

		// counterpart has not consented
		require.Nil(t, answer(p, alice, bob, true), "alice yes again")
		assert.Equal(t, record.Marrying, status(t, p), "married without bob")

		require.Nil(t, answer(p, alice, bob, false), "alice no")
		assert.Equal(t, record.Marrying, status(t, p), "no moved status")
		assert.False(t, consent(t, p, alice), "consent not withdrawn")

		require.Nil(t, answer(p, bob, alice, true), "bob yes")
		assert.Equal(t, record.Marrying, status(t, p), "married after alice withdrew")

		require.Nil(t, answer(p, alice, bob, true), "alice yes")
		assert.Equal(t, record.Married, status(t, p), "not married")
	})

	t.Run("closed states", func(t *testing.T) {
		p := newProgram(t)
		marry(t, p)
		assert.Equal(t, fault.InvalidAnswerStatus, answer(p, alice, bob, true), "answer while married")

		require.Nil(t, divorce(p, alice, bob), "divorce")
		assert.Equal(t, fault.InvalidAnswerStatus, answer(p, bob, alice, false), "answer while divorcing")
		assert.True(t, consent(t, p, bob), "failed answer changed consent")
	})

	t.Run("missing records", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup wedding")
		require.Nil(t, setupPartner(p, alice, bob, "Alice"), "setup alice")
		assert.Equal(t, fault.ErrRecordNotFound, answer(p, alice, bob, true), "answer without counterpart")
	})

	t.Run("foreign partner", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup wedding")
		require.Nil(t, setupPartner(p, alice, bob, "Alice"), "setup alice")
		// bob's record points at a wedding with dave
		require.Nil(t, setupPartner(p, bob, fixtures.Dave, "Bob"), "setup bob")
		assert.Equal(t, fault.PartnerWeddingNotWedding, answer(p, alice, bob, true), "mismatched partner")
	})
}

func TestDivorce(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob

	t.Run("too early", func(t *testing.T) {
		p := newProgram(t)
		readyWedding(t, p)
		assert.Equal(t, fault.InvalidDivorceStatus, divorce(p, alice, bob), "divorce while created")

		require.Nil(t, answer(p, alice, bob, true), "yes")
		assert.Equal(t, fault.InvalidDivorceStatus, divorce(p, alice, bob), "divorce while marrying")
	})

	t.Run("waits for counterpart", func(t *testing.T) {
		p := newProgram(t)
		marry(t, p)

		require.Nil(t, divorce(p, alice, bob), "first divorce")
		require.Nil(t, divorce(p, alice, bob), "repeated divorce")
		assert.Equal(t, record.Divorcing, status(t, p), "closed while bob consents")

		require.Nil(t, divorce(p, bob, alice), "bob divorces")
		_, err := p.Wedding(alice.Account, bob.Account)
		assert.Equal(t, fault.ErrRecordNotFound, err, "wedding survived")
	})

	t.Run("wrong creator", func(t *testing.T) {
		p := newProgram(t)
		marry(t, p)
		err := submit(p, alice, &transaction.Divorce{
			User:    alice.Account,
			Other:   bob.Account,
			Creator: alice.Account,
		})
		assert.Equal(t, fault.InvalidCreator, err, "refund redirected")
		assert.Equal(t, record.Married, status(t, p), "status changed")
	})

	t.Run("partner records checked before creator", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup wedding")
		require.Nil(t, setupPartner(p, alice, bob, "Alice"), "setup alice")
		require.Nil(t, setupPartner(p, bob, fixtures.Dave, "Bob"), "setup bob")
		err := submit(p, alice, &transaction.Divorce{
			User:    alice.Account,
			Other:   bob.Account,
			Creator: alice.Account,
		})
		assert.Equal(t, fault.PartnerWeddingNotWedding, err, "creator checked first")
	})
}

func TestCancelWedding(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob
	carol := fixtures.Carol
	weddingDeposit := ledger.MinimumBalance(record.WeddingSpace)

	t.Run("by creator", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup")
		before := p.Ledger().Balance(carol.Account.Address())

		require.Nil(t, cancel(p, carol), "cancel")
		_, err := p.Wedding(alice.Account, bob.Account)
		assert.Equal(t, fault.ErrRecordNotFound, err, "wedding survived")
		assert.Equal(t, before+weddingDeposit, p.Ledger().Balance(carol.Account.Address()), "creator not refunded")
	})

	t.Run("by partner while marrying", func(t *testing.T) {
		p := newProgram(t)
		readyWedding(t, p)
		require.Nil(t, answer(p, alice, bob, true), "yes")

		require.Nil(t, cancel(p, bob), "cancel")
		assert.Equal(t, uint64(funding), p.Ledger().Balance(carol.Account.Address()), "creator not refunded")
	})

	t.Run("by stranger", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup")
		assert.Equal(t, fault.NotWeddingMember, cancel(p, fixtures.Dave), "stranger cancelled")
	})

	t.Run("after marriage", func(t *testing.T) {
		p := newProgram(t)
		marry(t, p)
		assert.Equal(t, fault.CannotCancel, cancel(p, alice), "cancelled marriage")
	})

	t.Run("wrong creator", func(t *testing.T) {
		p := newProgram(t)
		require.Nil(t, setupWedding(p), "setup")
		err := submit(p, alice, &transaction.CancelWedding{
			User:    alice.Account,
			Creator: alice.Account,
			UserA:   alice.Account,
			UserB:   bob.Account,
		})
		assert.Equal(t, fault.InvalidCreator, err, "refund redirected")
	})

	t.Run("absent", func(t *testing.T) {
		p := newProgram(t)
		assert.Equal(t, fault.ErrRecordNotFound, cancel(p, carol), "cancelled nothing")
	})
}

// no operation leads to divorced, so the status is written directly
func TestDivorcedIsFinal(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob

	p := newProgram(t)
	marry(t, p)

	state, err := p.Wedding(alice.Account, bob.Account)
	require.Nil(t, err, "read wedding")
	w := *state.Wedding
	w.Status = record.Divorced
	data, err := w.Pack()
	require.Nil(t, err, "pack wedding")

	err = execute(p, nil, func(c *ledger.Context) error {
		return c.Write(state.Address, data)
	})
	require.Nil(t, err, "write divorced status")
	require.Equal(t, record.Divorced, status(t, p), "status not written")

	assert.Equal(t, fault.InvalidAnswerStatus, answer(p, alice, bob, false), "answer while divorced")
	assert.Equal(t, fault.InvalidAnswerStatus, answer(p, bob, alice, true), "answer while divorced")
	assert.Equal(t, fault.InvalidDivorceStatus, divorce(p, alice, bob), "divorce while divorced")
	assert.Equal(t, fault.CannotCancel, cancel(p, alice), "partner cancelled while divorced")
	assert.Equal(t, fault.CannotCancel, cancel(p, fixtures.Carol), "creator cancelled while divorced")

	assert.Equal(t, record.Divorced, status(t, p), "failed calls changed status")
	assert.True(t, consent(t, p, alice), "failed calls changed alice consent")
	assert.True(t, consent(t, p, bob), "failed calls changed bob consent")
}

func TestClosePartner(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob

	p := newProgram(t)
	assert.Equal(t, fault.ErrRecordNotFound, closePartner(p, alice, bob), "closed nothing")

	readyWedding(t, p)
	assert.Equal(t, fault.WeddingInitialized, closePartner(p, alice, bob), "closed during wedding")
	assert.Equal(t, fault.PartnerWeddingNotWedding, closePartner(p, alice, fixtures.Dave), "forged other")

	require.Nil(t, cancel(p, alice), "cancel")
	require.Nil(t, closePartner(p, alice, bob), "close after cancel")
	assert.Equal(t, uint64(funding), p.Ledger().Balance(alice.Account.Address()), "alice not refunded")

	// slot is free again
	require.Nil(t, setupPartner(p, alice, fixtures.Dave, "Alice"), "new partner record")
}

func TestSignerRequired(t *testing.T) {
	p := newProgram(t)
	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account
	carol := fixtures.Carol.Account

	tests := []struct {
		name    string
		handler ledger.Handler
	}{
		{"setup wedding", func(c *ledger.Context) error {
			return wedding.SetupWedding(c, &transaction.SetupWedding{Creator: carol, UserA: alice, UserB: bob})
		}},
		{"setup partner", func(c *ledger.Context) error {
			return wedding.SetupPartner(c, &transaction.SetupPartner{User: alice, Other: bob, Name: "Alice"})
		}},
		{"give answer", func(c *ledger.Context) error {
			return wedding.GiveAnswer(c, &transaction.GiveAnswer{User: alice, Other: bob, Answer: true})
		}},
		{"divorce", func(c *ledger.Context) error {
			return wedding.Divorce(c, &transaction.Divorce{User: alice, Other: bob, Creator: carol})
		}},
		{"cancel", func(c *ledger.Context) error {
			return wedding.CancelWedding(c, &transaction.CancelWedding{User: alice, Creator: carol, UserA: alice, UserB: bob})
		}},
		{"close partner", func(c *ledger.Context) error {
			return wedding.ClosePartner(c, &transaction.ClosePartner{User: alice, Other: bob})
		}},
	}

	for _, item := range tests {
		err := execute(p, []*account.Account{fixtures.Dave.Account}, item.handler)
		assert.Equal(t, fault.ErrMissingSignature, err, "%s: wrong error", item.name)
	}
}

func TestReplayRejected(t *testing.T) {
	p := newProgram(t)
	tx := transaction.New(42, &transaction.SetupPartner{
		User:  fixtures.Alice.Account,
		Other: fixtures.Bob.Account,
		Name:  "Alice",
	})
	require.Nil(t, tx.Sign(fixtures.Alice), "sign")
	packed, err := tx.Pack()
	require.Nil(t, err, "pack")

	receipt, err := p.Submit(packed)
	require.Nil(t, err, "first submit")
	assert.Equal(t, packed.TxId(), receipt.TxId, "wrong tx id")

	_, err = p.Submit(packed)
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "replay accepted")
}
