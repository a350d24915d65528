// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const logDir = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDir)
	_ = os.Mkdir(logDir, 0700)

	logging := logger.Configuration{
		Directory: logDir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDir)
	os.Exit(rc)
}
