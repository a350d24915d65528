// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/rpc/certificate"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections" env:"MAXIMUM_CONNECTIONS"`
	Listen             []string `gluamapper:"listen" json:"listen" env:"LISTEN"`
	Certificate        string   `gluamapper:"certificate" json:"certificate" env:"CERTIFICATE"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key" env:"PRIVATE_KEY"`
}

// Counter - number of open client connections
type Counter struct {
	n uint64
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.n)
}

// acquire a slot, false if all are taken
func (c *Counter) acquire(maximum uint64) bool {
	if atomic.AddUint64(&c.n, 1) <= maximum {
		return true
	}
	c.release()
	return false
}

func (c *Counter) release() {
	atomic.AddUint64(&c.n, ^uint64(0))
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate configuration and prepare a JSON-RPC over TLS listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	fingerprint certificate.Fingerprint,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)

	listen := make([]string, len(configuration.Listen))
	copy(listen, configuration.Listen)
	ipType, err := parseListenAddress(listen, log)
	if nil != err {
		return nil, err
	}

	return &rpcListener{
		log:             log,
		count:           count,
		server:          server,
		maxConnections:  configuration.MaximumConnections,
		tlsConfig:       tlsConfig,
		ipType:          ipType,
		listenIPAndPort: listen,
	}, nil
}

func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)
		go r.accept(l)
	}
	return nil
}

// Addresses - the bound addresses, useful when listening on port zero
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, 0, len(r.listeners))
	for _, l := range r.listeners {
		addresses = append(addresses, l.Addr())
	}
	return addresses
}

// Stop - close all listening sockets
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()
	r.closeAll()
}

// lock must be held
func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !r.count.acquire(r.maxConnections) {
			r.log.Warnf("connection limit reached, refusing: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			r.count.release()
		}()
	}
}

// determine the network type for each listen address
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("rpc server listen error: %s", err)
			return nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			addrs[i] = net.JoinHostPort("::", port)
			parsed[i] = "tcp"
			continue
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("rpc server listen error: invalid IP: %q", host)
			return nil, fault.ErrInvalidIPAddress
		}
	}
	return parsed, nil
}
