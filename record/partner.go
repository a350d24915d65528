// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// text limits in bytes
const (
	MinNameLength = 1
	MaxNameLength = 64
	MaxVowsLength = 512
)

// Partner - one user's declaration of intent to enter a wedding
//
// packed:
//   discriminator(8) ++ wedding(32) ++ user(32) ++
//   u32le(len name) ++ name ++ u32le(len vows) ++ vows ++ answer(1)
type Partner struct {
	Wedding address.Address  `json:"wedding"`
	User    *account.Account `json:"user"`
	Name    string           `json:"name"`
	Vows    string           `json:"vows"`
	Answer  bool             `json:"answer"`
}

const partnerFixedLength = DiscriminatorLength + 2*address.Length + 4 + 4 + 1

// PartnerSpace - allocation needed for a partner with the given text
func PartnerSpace(name string, vows string) int {
	return partnerFixedLength + len(name) + len(vows)
}

// Space - bytes this record occupies when packed
func (partner *Partner) Space() int {
	return PartnerSpace(partner.Name, partner.Vows)
}

// Check - validate the text fields
func (partner *Partner) Check() error {
	if nil == partner.User {
		return fault.ErrInvalidKeyLength
	}
	if len(partner.Name) < MinNameLength {
		return fault.ErrNameTooShort
	}
	if len(partner.Name) > MaxNameLength {
		return fault.ErrNameTooLong
	}
	if len(partner.Vows) > MaxVowsLength {
		return fault.ErrVowsTooLong
	}
	if !utf8.ValidString(partner.Name) || !utf8.ValidString(partner.Vows) {
		return fault.ErrInvalidText
	}
	return nil
}

// Pack - convert the record to its stored bytes
func (partner *Partner) Pack() ([]byte, error) {
	if err := partner.Check(); nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, partner.Space())
	buffer = append(buffer, PartnerDiscriminator[:]...)
	buffer = append(buffer, partner.Wedding[:]...)
	buffer = append(buffer, partner.User.Bytes()...)
	buffer = appendString(buffer, partner.Name)
	buffer = appendString(buffer, partner.Vows)
	if partner.Answer {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}
	return buffer, nil
}

// UnpackPartner - decode stored bytes
//
// trailing bytes beyond the answer flag are ignored
func UnpackPartner(buffer []byte) (*Partner, error) {
	if err := expect(buffer, PartnerDiscriminator); nil != err {
		return nil, err
	}
	if len(buffer) < partnerFixedLength {
		return nil, fault.ErrRecordTruncated
	}

	n := DiscriminatorLength
	wedding, err := address.FromBytes(buffer[n : n+address.Length])
	if nil != err {
		return nil, err
	}
	n += address.Length

	user, err := account.FromBytes(buffer[n : n+address.Length])
	if nil != err {
		return nil, err
	}
	n += address.Length

	name, n, err := readString(buffer, n, MaxNameLength)
	if nil != err {
		return nil, err
	}
	vows, n, err := readString(buffer, n, MaxVowsLength)
	if nil != err {
		return nil, err
	}

	if n >= len(buffer) {
		return nil, fault.ErrRecordTruncated
	}
	answer := false
	switch buffer[n] {
	case 0:
	case 1:
		answer = true
	default:
		return nil, fault.ErrInvalidAnswer
	}

	return &Partner{
		Wedding: wedding,
		User:    user,
		Name:    name,
		Vows:    vows,
		Answer:  answer,
	}, nil
}

func appendString(buffer []byte, s string) []byte {
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(len(s)))
	buffer = append(buffer, length...)
	return append(buffer, s...)
}

func readString(buffer []byte, n int, maximum int) (string, int, error) {
	if n+4 > len(buffer) {
		return "", 0, fault.ErrRecordTruncated
	}
	length := int(binary.LittleEndian.Uint32(buffer[n : n+4]))
	n += 4
	if length > maximum {
		return "", 0, fault.ErrRecordTooLarge
	}
	if n+length > len(buffer) {
		return "", 0, fault.ErrRecordTruncated
	}
	return string(buffer[n : n+length]), n + length, nil
}
