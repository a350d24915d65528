// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/ledger"
)

const monitorInterval = time.Minute

type journalHead interface {
	Head() (uint64, ledger.Digest)
}

// periodically record journal growth and client load
type monitor struct {
	log         *logger.L
	journal     journalHead
	connections func() uint64
	interval    time.Duration
}

func (m *monitor) Run(args interface{}, shutdown <-chan struct{}) {

	log := m.log
	log.Info("starting…")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	last, _ := m.journal.Head()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			count, digest := m.journal.Head()
			if count != last {
				log.Infof("journal: %d transactions (+%d)  head: %s  connections: %d", count, count-last, digest, m.connections())
				last = count
			} else {
				log.Debugf("journal idle: %d transactions  connections: %d", count, m.connections())
			}
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
