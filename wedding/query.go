// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/record"
)

// PartnerState - a committed partner record
type PartnerState struct {
	Address address.Address `json:"address"`
	Deposit uint64          `json:"deposit"`
	Partner *record.Partner `json:"partner"`
}

// WeddingState - a committed wedding record
type WeddingState struct {
	Address address.Address `json:"address"`
	Deposit uint64          `json:"deposit"`
	Wedding *record.Wedding `json:"wedding"`
}

// Partner - read the partner record of a user
func (p *Program) Partner(user *account.Account) (*PartnerState, error) {
	a, err := PartnerAddress(p.ledger.Program(), user)
	if nil != err {
		return nil, err
	}
	e := p.ledger.Get(a)
	if nil == e || 0 == len(e.Data) || e.Owner != p.ledger.Program() {
		return nil, fault.ErrRecordNotFound
	}
	partner, err := record.UnpackPartner(e.Data)
	if nil != err {
		return nil, err
	}
	return &PartnerState{
		Address: a,
		Deposit: e.Lamports,
		Partner: partner,
	}, nil
}

// Wedding - read the wedding record of two users
func (p *Program) Wedding(userA *account.Account, userB *account.Account) (*WeddingState, error) {
	a, err := WeddingAddress(p.ledger.Program(), userA, userB)
	if nil != err {
		return nil, err
	}
	e := p.ledger.Get(a)
	if nil == e || 0 == len(e.Data) || e.Owner != p.ledger.Program() {
		return nil, fault.ErrRecordNotFound
	}
	w, err := record.UnpackWedding(e.Data)
	if nil != err {
		return nil, err
	}
	return &WeddingState{
		Address: a,
		Deposit: e.Lamports,
		Wedding: w,
	}, nil
}
