// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/weddingd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a record or identity location on the ledger
type Address [Length]byte

// Zero - the all zero address, never produced by derivation
var Zero Address

// FromBytes - copy a 32 byte slice into an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	if Length != len(buffer) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	a := Address{}
	copy(a[:], buffer)
	return a, nil
}

// Bytes - a copy of the address as a byte slice
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return a == Zero
}

// String - base58 form for use by the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert a base58 JSON string to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// Compare - lexicographic comparison, same as comparing the big endian values
func Compare(a Address, b Address) int {
	return bytes.Compare(a[:], b[:])
}

// Sort - return the pair in canonical order, lower first
//
// equal addresses are returned unchanged
func Sort(a Address, b Address) (Address, Address) {
	if Compare(a, b) > 0 {
		return b, a
	}
	return a, b
}
