// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction holds the signed envelope submitted to the
// wedding program.
//
// An envelope carries a single instruction together with its
// signers, the chain it is intended for and a random nonce.  It packs
// to a compact varint/byte format, is transmitted as hex text and is
// identified by the SHA3-256 digest of the packed bytes.
package transaction
