// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS pool (
  k BLOB PRIMARY KEY,
  v BLOB NOT NULL
) WITHOUT ROWID`

// SQLAccess - SQLite implementation of Access
//
// the open sql transaction plays the role of the LevelDB batch; a
// write error is held until Commit, which then rolls back
type SQLAccess struct {
	sync.Mutex
	db  *sql.DB
	tx  *sql.Tx
	err error
}

func openSQLite(path string, readOnly bool) (*SQLAccess, error) {
	if "" == strings.TrimSpace(path) {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	if readOnly {
		dsn += "&_pragma=query_only(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if nil != err {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer, and reads inside a transaction must see its writes
	db.SetMaxOpenConns(1)

	if err := db.Ping(); nil != err {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if !readOnly {
		if _, err := db.Exec(sqliteSchema); nil != err {
			_ = db.Close()
			return nil, fmt.Errorf("create sqlite schema: %w", err)
		}
	}
	return &SQLAccess{db: db}, nil
}

func (s *SQLAccess) Begin() error {
	s.Lock()
	defer s.Unlock()

	if nil != s.tx {
		return fmt.Errorf("batch already in use")
	}
	tx, err := s.db.Begin()
	if nil != err {
		return err
	}
	s.tx = tx
	s.err = nil
	return nil
}

func (s *SQLAccess) Put(key []byte, value []byte) {
	if nil == value {
		value = []byte{}
	}
	s.exec(`INSERT INTO pool (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`, key, value)
}

func (s *SQLAccess) Delete(key []byte) {
	s.exec(`DELETE FROM pool WHERE k = ?`, key)
}

func (s *SQLAccess) exec(query string, arguments ...interface{}) {
	s.Lock()
	defer s.Unlock()

	if nil != s.err {
		return
	}
	if nil == s.tx {
		s.err = fmt.Errorf("write outside of batch")
		return
	}
	if _, err := s.tx.Exec(query, arguments...); nil != err {
		s.err = err
	}
}

func (s *SQLAccess) Commit() error {
	s.Lock()
	defer s.Unlock()

	tx := s.tx
	s.tx = nil
	if nil == tx {
		return fmt.Errorf("commit outside of batch")
	}
	if nil != s.err {
		err := s.err
		s.err = nil
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLAccess) Abort() {
	s.Lock()
	defer s.Unlock()

	if nil != s.tx {
		_ = s.tx.Rollback()
	}
	s.tx = nil
	s.err = nil
}

func (s *SQLAccess) Get(key []byte) ([]byte, error) {
	s.Lock()
	defer s.Unlock()

	var row *sql.Row
	if nil != s.tx {
		row = s.tx.QueryRow(`SELECT v FROM pool WHERE k = ?`, key)
	} else {
		row = s.db.QueryRow(`SELECT v FROM pool WHERE k = ?`, key)
	}

	var value []byte
	err := row.Scan(&value)
	if sql.ErrNoRows == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	if nil == value {
		value = []byte{}
	}
	return value, nil
}

func (s *SQLAccess) Has(key []byte) (bool, error) {
	value, err := s.Get(key)
	return nil != value, err
}

func (s *SQLAccess) InUse() bool {
	s.Lock()
	defer s.Unlock()
	return nil != s.tx
}

func (s *SQLAccess) Close() error {
	s.Abort()
	return s.db.Close()
}
