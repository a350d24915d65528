// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/rpc/certificate"
	"github.com/bitmark-inc/weddingd/rpc/listeners"
	"github.com/bitmark-inc/weddingd/rpc/server"
	"github.com/bitmark-inc/weddingd/wedding"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	count    listeners.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the TLS JSON-RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, program *wedding.Program, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&globalData.count,
		server.Create(log, program, version, &globalData.count),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = listener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Addresses - where the listeners are bound
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}
	return globalData.listener.Addresses()
}

// Connections - number of open client connections
func Connections() uint64 {
	return globalData.count.Uint64()
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
