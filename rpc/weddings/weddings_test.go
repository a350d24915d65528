// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package weddings_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/record"
	"github.com/bitmark-inc/weddingd/rpc/mocks"
	"github.com/bitmark-inc/weddingd/rpc/weddings"
	"github.com/bitmark-inc/weddingd/transaction"
	"github.com/bitmark-inc/weddingd/wedding"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestWeddingSubmit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	w := weddings.New(logger.New(fixtures.LogCategory), p)

	packed := transaction.Packed{1, 2, 3, 4}
	receipt := &ledger.Receipt{
		TxId:     ledger.NewDigest(packed),
		Sequence: 7,
		Chain:    ledger.Digest{9},
	}
	p.EXPECT().Submit(packed).Return(receipt, nil).Times(1)

	var reply weddings.SubmitReply
	err := w.Submit(&weddings.SubmitArguments{Transaction: packed}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, receipt.TxId, reply.TxId, "wrong tx id")
	assert.Equal(t, uint64(7), reply.Sequence, "wrong sequence")
	assert.Equal(t, receipt.Chain, reply.Chain, "wrong chain")
}

func TestWeddingSubmitRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	w := weddings.New(logger.New(fixtures.LogCategory), p)

	packed := transaction.Packed{5, 6}
	p.EXPECT().Submit(packed).Return(nil, fault.InvalidAnswerStatus).Times(1)

	var reply weddings.SubmitReply
	err := w.Submit(&weddings.SubmitArguments{Transaction: packed}, &reply)
	assert.Equal(t, fault.InvalidAnswerStatus, err, "wrong error")
}

func TestWeddingSubmitEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := weddings.New(logger.New(fixtures.LogCategory), mocks.NewMockProgram(ctl))

	var reply weddings.SubmitReply
	err := w.Submit(&weddings.SubmitArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestWeddingGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	w := weddings.New(logger.New(fixtures.LogCategory), p)

	alice := fixtures.Alice.Account
	bob := fixtures.Bob.Account
	state := &wedding.WeddingState{
		Address: address.Address{1},
		Deposit: 1000,
		Wedding: record.NewWedding(alice, address.Address{2}, address.Address{3}),
	}
	p.EXPECT().Wedding(alice, bob).Return(state, nil).Times(1)

	var reply wedding.WeddingState
	err := w.Get(&weddings.GetArguments{UserA: alice, UserB: bob}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *state, reply, "wrong state")

	err = w.Get(&weddings.GetArguments{UserA: alice}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing user accepted")
}

func TestWeddingGetNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	w := weddings.New(logger.New(fixtures.LogCategory), p)

	p.EXPECT().Wedding(gomock.Any(), gomock.Any()).Return(nil, fault.ErrRecordNotFound).Times(1)

	var reply wedding.WeddingState
	err := w.Get(&weddings.GetArguments{UserA: fixtures.Alice.Account, UserB: fixtures.Carol.Account}, &reply)
	assert.Equal(t, fault.ErrRecordNotFound, err, "wrong error")
}

func TestPartnerGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	h := weddings.NewPartner(logger.New(fixtures.LogCategory), p)

	bob := fixtures.Bob.Account
	state := &wedding.PartnerState{
		Address: address.Address{4},
		Deposit: 2000,
		Partner: &record.Partner{
			Wedding: address.Address{5},
			User:    bob,
			Name:    "Bob",
			Vows:    "always",
			Answer:  true,
		},
	}
	p.EXPECT().Partner(bob).Return(state, nil).Times(1)

	var reply wedding.PartnerState
	err := h.Get(&weddings.PartnerArguments{User: bob}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, *state, reply, "wrong state")

	err = h.Get(&weddings.PartnerArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing user accepted")
}
