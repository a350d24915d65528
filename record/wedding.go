// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// Wedding - the agreement between two partner records
//
// packed:
//   discriminator(8) ++ creator(32) ++ partner0(32) ++ partner1(32) ++
//   status(1) ++ spare(1)
//
// Partner0 is always the lower of the two partner record addresses
type Wedding struct {
	Creator  *account.Account `json:"creator"`
	Partner0 address.Address  `json:"partner0"`
	Partner1 address.Address  `json:"partner1"`
	Status   Status           `json:"status"`
}

// WeddingSpace - fixed allocation of a wedding record
const WeddingSpace = DiscriminatorLength + 3*address.Length + 2

const weddingStatusOffset = DiscriminatorLength + 3*address.Length

// NewWedding - a wedding in created state with canonically ordered partners
func NewWedding(creator *account.Account, partnerA address.Address, partnerB address.Address) *Wedding {
	low, high := address.Sort(partnerA, partnerB)
	return &Wedding{
		Creator:  creator,
		Partner0: low,
		Partner1: high,
		Status:   Created,
	}
}

// HasPartner - check if the address occupies either slot
func (wedding *Wedding) HasPartner(a address.Address) bool {
	return a == wedding.Partner0 || a == wedding.Partner1
}

// Pack - convert the record to its stored bytes
func (wedding *Wedding) Pack() ([]byte, error) {
	if nil == wedding.Creator {
		return nil, fault.ErrInvalidKeyLength
	}
	if !wedding.Status.Valid() {
		return nil, fault.ErrInvalidStatus
	}

	buffer := make([]byte, 0, WeddingSpace)
	buffer = append(buffer, WeddingDiscriminator[:]...)
	buffer = append(buffer, wedding.Creator.Bytes()...)
	buffer = append(buffer, wedding.Partner0[:]...)
	buffer = append(buffer, wedding.Partner1[:]...)
	buffer = append(buffer, byte(wedding.Status), 0)
	return buffer, nil
}

// UnpackWedding - decode stored bytes
func UnpackWedding(buffer []byte) (*Wedding, error) {
	if err := expect(buffer, WeddingDiscriminator); nil != err {
		return nil, err
	}
	if len(buffer) <= weddingStatusOffset {
		return nil, fault.ErrRecordTruncated
	}

	n := DiscriminatorLength
	creator, err := account.FromBytes(buffer[n : n+address.Length])
	if nil != err {
		return nil, err
	}
	n += address.Length

	partner0, _ := address.FromBytes(buffer[n : n+address.Length])
	n += address.Length
	partner1, _ := address.FromBytes(buffer[n : n+address.Length])

	status := Status(buffer[weddingStatusOffset])
	if !status.Valid() {
		return nil, fault.ErrInvalidStatus
	}

	return &Wedding{
		Creator:  creator,
		Partner0: partner0,
		Partner1: partner1,
		Status:   status,
	}, nil
}
