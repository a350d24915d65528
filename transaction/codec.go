// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
)

// longest string field accepted by the decoder
const maximumStringLength = 4096

func appendUvarint(buffer []byte, value uint64) []byte {
	b := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(b, value)
	return append(buffer, b[:n]...)
}

func appendAccount(buffer []byte, a *account.Account) []byte {
	if nil == a {
		return append(buffer, make([]byte, ed25519.PublicKeySize)...)
	}
	return append(buffer, a.Bytes()...)
}

func appendString(buffer []byte, s string) []byte {
	buffer = appendUvarint(buffer, uint64(len(s)))
	return append(buffer, s...)
}

func appendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// reader - sequential decoder that keeps the first error
type reader struct {
	buffer []byte
	n      int
	err    error
}

func (r *reader) fail(err error) {
	if nil == r.err {
		r.err = err
	}
}

func (r *reader) uvarint() uint64 {
	if nil != r.err {
		return 0
	}
	value, count := binary.Uvarint(r.buffer[r.n:])
	if count <= 0 {
		r.fail(fault.ErrNotTransactionPack)
		return 0
	}
	r.n += count
	return value
}

func (r *reader) bytes(length int) []byte {
	if nil != r.err {
		return nil
	}
	if length < 0 || r.n+length > len(r.buffer) {
		r.fail(fault.ErrRecordTruncated)
		return nil
	}
	b := r.buffer[r.n : r.n+length]
	r.n += length
	return b
}

func (r *reader) account() *account.Account {
	b := r.bytes(ed25519.PublicKeySize)
	if nil != r.err {
		return nil
	}
	a, err := account.FromBytes(b)
	if nil != err {
		r.fail(err)
		return nil
	}
	return a
}

func (r *reader) string() string {
	length := r.uvarint()
	if length > maximumStringLength {
		r.fail(fault.ErrRecordTooLarge)
		return ""
	}
	return string(r.bytes(int(length)))
}

func (r *reader) bool() bool {
	b := r.bytes(1)
	if nil != r.err {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(fault.ErrInvalidAnswer)
		return false
	}
}
