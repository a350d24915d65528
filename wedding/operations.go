// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding

import (
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/record"
	"github.com/bitmark-inc/weddingd/transaction"
)

// SetupWedding - create the wedding record of two users
//
// both partner slots must be untouched, which is what stops a user
// being mid-wedding with two partners at once
func SetupWedding(c *ledger.Context, i *transaction.SetupWedding) error {
	if !c.IsSigner(i.Creator) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.UserA, i.UserB)
	if nil != err {
		return err
	}

	if err := validatePartnerSlot(c.Load(addresses.User)); nil != err {
		return err
	}
	if err := validatePartnerSlot(c.Load(addresses.Other)); nil != err {
		return err
	}

	w := record.NewWedding(i.Creator, addresses.User, addresses.Other)
	data, err := w.Pack()
	if nil != err {
		return err
	}
	return c.Create(i.Creator, addresses.Wedding, data)
}

// SetupPartner - create the caller's partner record
//
// the wedding it refers to need not exist yet
func SetupPartner(c *ledger.Context, i *transaction.SetupPartner) error {
	if !c.IsSigner(i.User) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.User, i.Other)
	if nil != err {
		return err
	}

	p := &record.Partner{
		Wedding: addresses.Wedding,
		User:    i.User,
		Name:    i.Name,
		Vows:    i.Vows,
		Answer:  false,
	}
	data, err := p.Pack()
	if nil != err {
		return err
	}
	return c.Create(i.User, addresses.User, data)
}

// GiveAnswer - set the caller's consent and advance the wedding
func GiveAnswer(c *ledger.Context, i *transaction.GiveAnswer) error {
	if !c.IsSigner(i.User) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.User, i.Other)
	if nil != err {
		return err
	}

	own, other, w, err := loadAll(c, addresses)
	if nil != err {
		return err
	}

	switch w.Status {
	case record.Created:
		if i.Answer {
			w.Status = record.Marrying
		}
	case record.Marrying:
		if i.Answer && other.Answer {
			w.Status = record.Married
		}
	default:
		return fault.InvalidAnswerStatus
	}
	own.Answer = i.Answer

	if err := storePartner(c, addresses.User, own); nil != err {
		return err
	}
	return storeWedding(c, addresses.Wedding, w)
}

// Divorce - withdraw the caller's consent from a marriage
//
// the wedding closes once both partners have withdrawn, refunding the
// creator
func Divorce(c *ledger.Context, i *transaction.Divorce) error {
	if !c.IsSigner(i.User) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.User, i.Other)
	if nil != err {
		return err
	}

	own, other, w, err := loadAll(c, addresses)
	if nil != err {
		return err
	}
	if !isCreator(i.Creator, w) {
		return fault.InvalidCreator
	}

	closing := false
	switch w.Status {
	case record.Married:
		w.Status = record.Divorcing
	case record.Divorcing:
		closing = !other.Answer
	default:
		return fault.InvalidDivorceStatus
	}
	own.Answer = false

	if err := storePartner(c, addresses.User, own); nil != err {
		return err
	}
	if closing {
		return c.Close(addresses.Wedding, i.Creator.Address())
	}
	return storeWedding(c, addresses.Wedding, w)
}

// CancelWedding - abandon a wedding that has not reached marriage
func CancelWedding(c *ledger.Context, i *transaction.CancelWedding) error {
	if !c.IsSigner(i.User) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.UserA, i.UserB)
	if nil != err {
		return err
	}

	w, err := loadWedding(c, addresses.Wedding)
	if nil != err {
		return err
	}
	if !isCreator(i.Creator, w) {
		return fault.InvalidCreator
	}

	callerPartner, err := PartnerAddress(c.Program(), i.User)
	if nil != err {
		return err
	}
	if !canCancel(i.User, callerPartner, w) {
		return fault.NotWeddingMember
	}

	switch w.Status {
	case record.Created, record.Marrying:
	default:
		return fault.CannotCancel
	}
	return c.Close(addresses.Wedding, i.Creator.Address())
}

// ClosePartner - reclaim the caller's partner record
//
// only once no wedding exists for the pair the record refers to
func ClosePartner(c *ledger.Context, i *transaction.ClosePartner) error {
	if !c.IsSigner(i.User) {
		return fault.ErrMissingSignature
	}
	addresses, err := Derive(c.Program(), i.User, i.Other)
	if nil != err {
		return err
	}

	own, err := loadPartner(c, addresses.User)
	if nil != err {
		return err
	}
	if !partnerOfWedding(own, addresses.Wedding) {
		return fault.PartnerWeddingNotWedding
	}
	if isInitialized(c.Load(addresses.Wedding)) {
		return fault.WeddingInitialized
	}
	return c.Close(addresses.User, i.User.Address())
}

// both partner records and the wedding, cross checked
func loadAll(c *ledger.Context, addresses *Addresses) (*record.Partner, *record.Partner, *record.Wedding, error) {
	own, err := loadPartner(c, addresses.User)
	if nil != err {
		return nil, nil, nil, err
	}
	other, err := loadPartner(c, addresses.Other)
	if nil != err {
		return nil, nil, nil, err
	}
	w, err := loadWedding(c, addresses.Wedding)
	if nil != err {
		return nil, nil, nil, err
	}
	if !partnerOfWedding(own, addresses.Wedding) || !partnerOfWedding(other, addresses.Wedding) {
		return nil, nil, nil, fault.PartnerWeddingNotWedding
	}
	return own, other, w, nil
}
