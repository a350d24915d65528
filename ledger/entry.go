// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// rent parameters
const (
	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2
)

// MinimumBalance - deposit that keeps a record of this size alive
func MinimumBalance(dataLength int) uint64 {
	return uint64(AccountStorageOverhead+dataLength) * LamportsPerByteYear * ExemptionThreshold
}

// Entry - the state stored at one ledger address
//
// identities have a zero owner and no data, records created by the
// program are owned by it
type Entry struct {
	Lamports uint64          `json:"lamports"`
	Owner    address.Address `json:"owner"`
	Data     []byte          `json:"data"`
}

const entryHeaderLength = 8 + address.Length

// IsEmpty - no stored bytes and no deposit
func (e *Entry) IsEmpty() bool {
	return 0 == len(e.Data) && 0 == e.Lamports
}

func (e *Entry) pack() []byte {
	buffer := make([]byte, entryHeaderLength, entryHeaderLength+len(e.Data))
	binary.BigEndian.PutUint64(buffer[:8], e.Lamports)
	copy(buffer[8:], e.Owner[:])
	return append(buffer, e.Data...)
}

func unpackEntry(buffer []byte) (*Entry, error) {
	if len(buffer) < entryHeaderLength {
		return nil, fault.ErrRecordTruncated
	}
	owner, _ := address.FromBytes(buffer[8:entryHeaderLength])
	data := make([]byte, len(buffer)-entryHeaderLength)
	copy(data, buffer[entryHeaderLength:])
	return &Entry{
		Lamports: binary.BigEndian.Uint64(buffer[:8]),
		Owner:    owner,
		Data:     data,
	}, nil
}
