// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// derivation tags
const (
	PartnerTag = "partner"
	WeddingTag = "wedding"
)

// PartnerAddress - the partner record of a user
func PartnerAddress(program address.Address, user *account.Account) (address.Address, error) {
	if nil == user {
		return address.Zero, fault.ErrInvalidKeyLength
	}
	a, _, err := address.Derive(program, []byte(PartnerTag), user.Bytes())
	return a, err
}

// WeddingAddress - the wedding record of two users
//
// seeded by the two partner record addresses in canonical order so the
// result does not depend on which user is given first
func WeddingAddress(program address.Address, userA *account.Account, userB *account.Account) (address.Address, error) {
	partnerA, err := PartnerAddress(program, userA)
	if nil != err {
		return address.Zero, err
	}
	partnerB, err := PartnerAddress(program, userB)
	if nil != err {
		return address.Zero, err
	}
	low, high := address.Sort(partnerA, partnerB)
	a, _, err := address.Derive(program, []byte(WeddingTag), low.Bytes(), high.Bytes())
	return a, err
}

// Addresses - every address involved in a wedding between user and other
type Addresses struct {
	User    address.Address `json:"user"`
	Other   address.Address `json:"other"`
	Wedding address.Address `json:"wedding"`
}

// Derive - partner records of both users and their wedding record
func Derive(program address.Address, user *account.Account, other *account.Account) (*Addresses, error) {
	if nil == user || nil == other {
		return nil, fault.ErrInvalidKeyLength
	}
	if user.Equal(other) {
		return nil, fault.ErrSamePartner
	}
	u, err := PartnerAddress(program, user)
	if nil != err {
		return nil, err
	}
	o, err := PartnerAddress(program, other)
	if nil != err {
		return nil, err
	}
	w, err := WeddingAddress(program, user, other)
	if nil != err {
		return nil, err
	}
	return &Addresses{
		User:    u,
		Other:   o,
		Wedding: w,
	}, nil
}
