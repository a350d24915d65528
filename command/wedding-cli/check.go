// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/chain"
	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/keypair"
	"github.com/bitmark-inc/weddingd/ledger"
)

// identity name is required, but the config file is not checked
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// map the accepted aliases to a chain name
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "", "testing", "test":
		return chain.Testing, nil
	case "live", "production":
		return chain.Live, nil
	case "local", "dev", "development":
		return chain.Local, nil
	default:
		return "", ErrInvalidNetwork
	}
}

// connect is required.
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// partner name is required
func checkPartnerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return "", ErrRequiredName
	}
	return name, nil
}

// seed must decode and belong to the same class of network as the
// configuration
func checkSeed(seed string, network string) (string, error) {
	k, err := keypair.FromSeed(seed)
	if nil != err {
		return "", err
	}
	if k.IsTesting() != (chain.Live != network) {
		return "", ErrSeedNetworkMismatch
	}
	return seed, nil
}

// either an identity name from the configuration or a base58 account
func checkAccount(config *configuration.Configuration, nameOrAccount string) (*account.Account, error) {
	if "" == nameOrAccount {
		return nil, ErrRequiredAccount
	}
	if nil != config {
		if acc, err := config.Account(nameOrAccount); nil == err {
			return acc, nil
		}
	}
	return account.FromBase58(nameOrAccount)
}

// like checkAccount, but blank selects the current identity
func checkOptionalAccount(config *configuration.Configuration, nameOrAccount string, identity string) (*account.Account, error) {
	if "" == nameOrAccount {
		return config.Account(identity)
	}
	return checkAccount(config, nameOrAccount)
}

// transaction id is required
func checkTxId(txId string) (ledger.Digest, error) {
	var digest ledger.Digest
	if "" == txId {
		return digest, ErrRequiredTransactionId
	}
	err := digest.UnmarshalText([]byte(txId))
	return digest, err
}

// returns true if the path is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
