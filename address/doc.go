// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic record addresses
//
// Every record on the ledger lives at a 32 byte address computed from
// a program identifier, a namespace tag and an ordered list of seeds.
// There is no allocator: two callers deriving from the same inputs
// always reach the same address, so the address itself acts as the
// uniqueness constraint.
//
// Derivation:
//
//   for bump = 255 … 0:
//     h = SHA-256(tag ++ seed[0] ++ … ++ seed[n] ++ bump ++ program ++ "ProgramDerivedAddress")
//     if h is not a valid ed25519 point: return h, bump
//
// The off-curve requirement guarantees that no private key exists for
// a derived address, so only the program logic can act for it.
package address
