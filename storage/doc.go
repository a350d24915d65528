// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// A single database (LevelDB, SQLite or an in-memory LevelDB) is split
// into a series of tables.  Each table is defined by a prefix byte that
// is obtained from the prefix tag in the struct defining the available
// tables.  All writes happen inside Begin/Commit so that a failed
// ledger transaction leaves nothing behind.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte ledger address
// 4. txId     = SHA3-256 of the packed transaction
// 5. sequence = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ address        - ledger account (identity or derived record)
//                         data: lamports(8) ++ owner program(32) ++ record data
//
// Journal:
//
//   T ++ txId           - committed transaction
//                         data: sequence ++ packed transaction
//   J ++ sequence       - transaction order
//                         data: txId ++ chain digest
//   H                   - head of journal
//                         data: next sequence ++ chain digest
package storage
