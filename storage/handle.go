// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// Handle - access to one pool
type Handle interface {
	Delete([]byte)
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	GetNB([]byte) (uint64, []byte)
	Has([]byte) bool
	Put([]byte, []byte)
	PutN([]byte, uint64)
	PutNB([]byte, uint64, []byte)
}

// PoolHandle - a prefixed region of the database
type PoolHandle struct {
	prefix byte
	access Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair in the open batch
func (p *PoolHandle) Put(key []byte, value []byte) {
	p.access.Put(p.prefixKey(key), value)
}

// PutN - store a big endian uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.access.Put(p.prefixKey(key), buffer)
}

// PutNB - store a big endian uint64 followed by bytes
func (p *PoolHandle) PutNB(key []byte, n uint64, value []byte) {
	buffer := make([]byte, 8, 8+len(value))
	binary.BigEndian.PutUint64(buffer, n)
	p.access.Put(p.prefixKey(key), append(buffer, value...))
}

// Delete - remove a key in the open batch
func (p *PoolHandle) Delete(key []byte) {
	p.access.Delete(p.prefixKey(key))
}

// Get - read a value for a given key, nil if not found
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.access.Get(p.prefixKey(key))
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, nil
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetNB truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, buffer[8:]
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	found, err := p.access.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return found
}
