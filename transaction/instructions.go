// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/weddingd/account"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is stored as a varint64 and so must be a positive integer
const (
	NullTag TagType = iota

	SetupWeddingTag  TagType = iota
	SetupPartnerTag  TagType = iota
	GiveAnswerTag    TagType = iota
	DivorceTag       TagType = iota
	CancelWeddingTag TagType = iota
	ClosePartnerTag  TagType = iota

	// this item must be last
	InvalidTag TagType = iota
)

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	Signers() []*account.Account
	packFields([]byte) []byte
}

// SetupWedding - creator funds the wedding of two users
type SetupWedding struct {
	Creator *account.Account `json:"creator"`
	UserA   *account.Account `json:"userA"`
	UserB   *account.Account `json:"userB"`
}

// SetupPartner - user declares intent to marry other
type SetupPartner struct {
	User  *account.Account `json:"user"`
	Other *account.Account `json:"other"`
	Name  string           `json:"name"`
	Vows  string           `json:"vows"`
}

// GiveAnswer - user records consent
type GiveAnswer struct {
	User   *account.Account `json:"user"`
	Other  *account.Account `json:"other"`
	Answer bool             `json:"answer"`
}

// Divorce - user withdraws from a marriage
type Divorce struct {
	User    *account.Account `json:"user"`
	Other   *account.Account `json:"other"`
	Creator *account.Account `json:"creator"`
}

// CancelWedding - a partner or the creator abandons the wedding before marriage
type CancelWedding struct {
	User    *account.Account `json:"user"`
	Creator *account.Account `json:"creator"`
	UserA   *account.Account `json:"userA"`
	UserB   *account.Account `json:"userB"`
}

// ClosePartner - user reclaims their partner record
type ClosePartner struct {
	User  *account.Account `json:"user"`
	Other *account.Account `json:"other"`
}

func (*SetupWedding) Tag() TagType  { return SetupWeddingTag }
func (*SetupPartner) Tag() TagType  { return SetupPartnerTag }
func (*GiveAnswer) Tag() TagType    { return GiveAnswerTag }
func (*Divorce) Tag() TagType       { return DivorceTag }
func (*CancelWedding) Tag() TagType { return CancelWeddingTag }
func (*ClosePartner) Tag() TagType  { return ClosePartnerTag }

func (i *SetupWedding) Signers() []*account.Account  { return []*account.Account{i.Creator} }
func (i *SetupPartner) Signers() []*account.Account  { return []*account.Account{i.User} }
func (i *GiveAnswer) Signers() []*account.Account    { return []*account.Account{i.User} }
func (i *Divorce) Signers() []*account.Account       { return []*account.Account{i.User} }
func (i *CancelWedding) Signers() []*account.Account { return []*account.Account{i.User} }
func (i *ClosePartner) Signers() []*account.Account  { return []*account.Account{i.User} }

// String - name of the instruction type
func (tag TagType) String() string {
	switch tag {
	case SetupWeddingTag:
		return "setup-wedding"
	case SetupPartnerTag:
		return "setup-partner"
	case GiveAnswerTag:
		return "give-answer"
	case DivorceTag:
		return "divorce"
	case CancelWeddingTag:
		return "cancel-wedding"
	case ClosePartnerTag:
		return "close-partner"
	default:
		return "*unknown*"
	}
}

func (i *SetupWedding) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.Creator)
	buffer = appendAccount(buffer, i.UserA)
	return appendAccount(buffer, i.UserB)
}

func (i *SetupPartner) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.User)
	buffer = appendAccount(buffer, i.Other)
	buffer = appendString(buffer, i.Name)
	return appendString(buffer, i.Vows)
}

func (i *GiveAnswer) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.User)
	buffer = appendAccount(buffer, i.Other)
	return appendBool(buffer, i.Answer)
}

func (i *Divorce) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.User)
	buffer = appendAccount(buffer, i.Other)
	return appendAccount(buffer, i.Creator)
}

func (i *CancelWedding) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.User)
	buffer = appendAccount(buffer, i.Creator)
	buffer = appendAccount(buffer, i.UserA)
	return appendAccount(buffer, i.UserB)
}

func (i *ClosePartner) packFields(buffer []byte) []byte {
	buffer = appendAccount(buffer, i.User)
	return appendAccount(buffer, i.Other)
}
