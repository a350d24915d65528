// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/rpc/accounts"
	"github.com/bitmark-inc/weddingd/rpc/listeners"
	"github.com/bitmark-inc/weddingd/rpc/node"
	"github.com/bitmark-inc/weddingd/rpc/transaction"
	"github.com/bitmark-inc/weddingd/rpc/weddings"
	"github.com/bitmark-inc/weddingd/wedding"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, program *wedding.Program, version string, rpcCount *listeners.Counter) *rpc.Server {

	start := time.Now().UTC()
	l := program.Ledger()

	server := rpc.NewServer()

	_ = server.RegisterName("Wedding", weddings.New(log, program))
	_ = server.RegisterName("Partner", weddings.NewPartner(log, program))
	_ = server.RegisterName("Account", accounts.New(log, l))
	_ = server.RegisterName("Node", node.New(log, l, start, version, rpcCount))
	_ = server.RegisterName("Transaction", transaction.New(log, start, l))

	return server
}
