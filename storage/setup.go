// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/weddingd/fault"
)

// supported backends
const (
	LevelDB = "leveldb"
	SQLite  = "sqlite"
	Memory  = "memory"
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Configuration - database section of the configuration file
type Configuration struct {
	Backend   string `gluamapper:"backend" json:"backend" env:"BACKEND"`
	Directory string `gluamapper:"directory" json:"directory" env:"DIRECTORY"`
	Name      string `gluamapper:"name" json:"name" env:"NAME"`
}

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will fail
type Pools struct {
	Accounts     *PoolHandle `prefix:"A"`
	Transactions *PoolHandle `prefix:"T"`
	Journal      *PoolHandle `prefix:"J"`
	Head         *PoolHandle `prefix:"H"`
}

// Database - an open database and its pools
type Database struct {
	Pool   Pools
	access Access
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// Open - open up the database connection
func Open(configuration Configuration, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	var access Access
	switch configuration.Backend {
	case LevelDB, "":
		name := filepath.Join(configuration.Directory, configuration.Name)
		log.Infof("open leveldb: %q", name)
		db, err := leveldb.OpenFile(name, &ldb_opt.Options{
			ErrorIfExist:   false,
			ErrorIfMissing: readOnly,
			ReadOnly:       readOnly,
		})
		if nil != err {
			return nil, err
		}
		access = newDA(db, new(leveldb.Batch), newCache())

	case SQLite:
		name := filepath.Join(configuration.Directory, configuration.Name)
		log.Infof("open sqlite: %q", name)
		sqlAccess, err := openSQLite(name, readOnly)
		if nil != err {
			return nil, err
		}
		access = sqlAccess

	case Memory:
		log.Warn("using in-memory database, state is lost on exit")
		db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
		if nil != err {
			return nil, err
		}
		access = newDA(db, new(leveldb.Batch), newCache())

	default:
		return nil, fault.ErrUnknownStorageBackend
	}

	database, err := newDatabase(access, readOnly)
	if nil != err {
		_ = access.Close()
		return nil, err
	}
	return database, nil
}

func newDatabase(access Access, readOnly bool) (*Database, error) {
	version, err := getVersion(access)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	if 0 == version && !readOnly {
		if err := putVersion(access, currentDBVersion); nil != err {
			return nil, err
		}
	}

	database := &Database{
		access: access,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(database.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&database.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &PoolHandle{
			prefix: prefixTag[0],
			access: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return database, nil
}

// Access - the transaction interface shared by all pools
func (d *Database) Access() Access {
	return d.access
}

// Close - close the database connection
func (d *Database) Close() error {
	return d.access.Close()
}

func getVersion(access Access) (int, error) {
	versionValue, err := access.Get(versionKey)
	if nil != err {
		return 0, err
	}
	if nil == versionValue {
		return 0, nil
	}
	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(access Access, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	if err := access.Begin(); nil != err {
		return err
	}
	access.Put(versionKey, currentVersion)
	return access.Commit()
}
