// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/weddingd/background"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/ledger"
)

type growingJournal struct {
	calls int64
}

func (g *growingJournal) Head() (uint64, ledger.Digest) {
	n := atomic.AddInt64(&g.calls, 1)
	return uint64(n), ledger.Digest{}
}

func TestMonitorPollsJournal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	journal := &growingJournal{}
	var polled int64

	m := &monitor{
		log:     logger.New(fixtures.LogCategory),
		journal: journal,
		connections: func() uint64 {
			atomic.AddInt64(&polled, 1)
			return 0
		},
		interval: time.Millisecond,
	}

	p := background.Start(background.Processes{m}, nil)
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	assert.True(t, atomic.LoadInt64(&journal.calls) > 1, "journal head was not polled")
	assert.True(t, atomic.LoadInt64(&polled) > 0, "connections were not reported")
}
