// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/keypair"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed identities so that derived addresses are stable across runs
var (
	Alice *keypair.KeyPair
	Bob   *keypair.KeyPair
	Carol *keypair.KeyPair
	Dave  *keypair.KeyPair
)

func init() {
	Alice = mustKeyPair(0x11)
	Bob = mustKeyPair(0x22)
	Carol = mustKeyPair(0x33)
	Dave = mustKeyPair(0x44)
}

func mustKeyPair(fill byte) *keypair.KeyPair {
	k, err := keypair.FromSeedCore("", bytes.Repeat([]byte{fill}, 32))
	if nil != err {
		panic(fmt.Sprintf("fixture key: %s", err))
	}
	return k
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
