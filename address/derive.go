// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/weddingd/fault"
)

// limits on derivation input
const (
	MaximumSeedLength = 32
	MaximumSeeds      = 16
)

const derivedMarker = "ProgramDerivedAddress"

// Bump - the disambiguation nonce that moved the digest off the curve
type Bump uint8

// Derive - compute the record address for a tag and ordered seeds
//
// pure: identical inputs always produce the identical address and bump
func Derive(program Address, tag []byte, seeds ...[]byte) (Address, Bump, error) {
	if len(seeds)+1 > MaximumSeeds {
		return Address{}, 0, fault.ErrTooManySeeds
	}
	if len(tag) > MaximumSeedLength {
		return Address{}, 0, fault.ErrSeedTooLong
	}
	for _, s := range seeds {
		if len(s) > MaximumSeedLength {
			return Address{}, 0, fault.ErrSeedTooLong
		}
	}

	for bump := 255; bump >= 0; bump -= 1 {
		a := create(program, tag, seeds, byte(bump))
		if !onCurve(a) {
			return a, Bump(bump), nil
		}
	}
	return Address{}, 0, fault.ErrNoViableBump
}

// DeriveWithBump - recompute an address from a previously found bump
//
// returns false if that bump lands on the curve
func DeriveWithBump(program Address, bump Bump, tag []byte, seeds ...[]byte) (Address, bool) {
	a := create(program, tag, seeds, byte(bump))
	return a, !onCurve(a)
}

func create(program Address, tag []byte, seeds [][]byte, bump byte) Address {
	h := sha256.New()
	h.Write(tag)
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte(derivedMarker))

	a := Address{}
	copy(a[:], h.Sum(nil))
	return a
}

// a valid point encoding could have a private key behind it
func onCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
