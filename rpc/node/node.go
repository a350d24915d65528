// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/rpc/ratelimit"
	"github.com/bitmark-inc/weddingd/wedding"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	// airdrops are expensive to abuse, keep them slow
	rateLimitAirdrop = 1
	rateBurstAirdrop = 5
)

// Ledger - ledger queries for node information
type Ledger interface {
	Chain() string
	Program() address.Address
	Head() (uint64, ledger.Digest)
	Airdrop(address.Address, uint64) (uint64, error)
}

// Counter - connection count source
type Counter interface {
	Uint64() uint64
}

// Node - type for RPC calls
type Node struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	Start          time.Time
	Version        string
	Ledger         Ledger
	counter        Counter
}

// New - node RPC handler
func New(log *logger.L, l Ledger, start time.Time, version string, counter Counter) *Node {
	return &Node{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitNode, rateBurstNode),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		Start:          start,
		Version:        version,
		Ledger:         l,
		counter:        counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string          `json:"chain"`
	Program address.Address `json:"program"`
	Journal JournalInfo     `json:"journal"`
	RPCs    uint64          `json:"rpcs"`
	Version string          `json:"version"`
	Uptime  string          `json:"uptime"`
}

// JournalInfo - the committed transaction history
type JournalInfo struct {
	Count uint64        `json:"count,string"`
	Chain ledger.Digest `json:"chain"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrNotInitialised
	}

	count, chain := node.Ledger.Head()

	reply.Chain = node.Ledger.Chain()
	reply.Program = node.Ledger.Program()
	reply.Journal = JournalInfo{
		Count: count,
		Chain: chain,
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// AirdropArguments - fund an address on a test chain
type AirdropArguments struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports,string"`
}

// AirdropReply - balance after funding
type AirdropReply struct {
	Balance uint64 `json:"balance,string"`
}

// Airdrop - fund an address, only allowed on test chains
func (node *Node) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(node.AirdropLimiter); nil != err {
		return err
	}

	balance, err := node.Ledger.Airdrop(arguments.Address, arguments.Lamports)
	if nil != err {
		return err
	}
	node.Log.Infof("airdrop: %d to: %s", arguments.Lamports, arguments.Address)

	reply.Balance = balance
	return nil
}

// ---

// DeriveArguments - two users
type DeriveArguments struct {
	UserA *account.Account `json:"userA"`
	UserB *account.Account `json:"userB"`
}

// DeriveReply - record addresses of the pair
type DeriveReply struct {
	PartnerA address.Address `json:"partnerA"`
	PartnerB address.Address `json:"partnerB"`
	Wedding  address.Address `json:"wedding"`
}

// Derive - compute partner and wedding addresses without touching the ledger
func (node *Node) Derive(arguments *DeriveArguments, reply *DeriveReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == arguments.UserA || nil == arguments.UserB {
		return fault.ErrMissingParameters
	}

	addresses, err := wedding.Derive(node.Ledger.Program(), arguments.UserA, arguments.UserB)
	if nil != err {
		return err
	}

	reply.PartnerA = addresses.User
	reply.PartnerB = addresses.Other
	reply.Wedding = addresses.Wedding
	return nil
}
