// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - byte layout of the records owned by the program
//
// every record starts with an 8 byte discriminator so that a record of
// one kind can never be unpacked as another
package record

import (
	"bytes"
	"crypto/sha256"

	"github.com/bitmark-inc/weddingd/fault"
)

// DiscriminatorLength - size of the leading record type marker
const DiscriminatorLength = 8

// Discriminator - leading record type marker
type Discriminator [DiscriminatorLength]byte

// record type markers
var (
	PartnerDiscriminator = discriminator("Partner")
	WeddingDiscriminator = discriminator("Wedding")
)

func discriminator(name string) Discriminator {
	h := sha256.Sum256([]byte("account:" + name))
	d := Discriminator{}
	copy(d[:], h[:DiscriminatorLength])
	return d
}

// check the leading marker of a packed record
func expect(buffer []byte, d Discriminator) error {
	if len(buffer) < DiscriminatorLength {
		return fault.ErrRecordTruncated
	}
	if !bytes.Equal(d[:], buffer[:DiscriminatorLength]) {
		return fault.ErrWrongRecordType
	}
	return nil
}
