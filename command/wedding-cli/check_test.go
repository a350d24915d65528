// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/weddingd/chain"
	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/keypair"
	"github.com/bitmark-inc/weddingd/ledger"
)

func TestCheckNetwork(t *testing.T) {
	items := []struct {
		network  string
		expected string
		err      error
	}{
		{"", chain.Testing, nil},
		{"test", chain.Testing, nil},
		{"Live", chain.Live, nil},
		{"production", chain.Live, nil},
		{"dev", chain.Local, nil},
		{"local", chain.Local, nil},
		{"bitmark", "", ErrInvalidNetwork},
	}

	for i, item := range items {
		actual, err := checkNetwork(item.network)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.expected, actual, "%d: network", i)
	}
}

func TestCheckRequiredStrings(t *testing.T) {
	_, err := checkName("")
	assert.Equal(t, ErrRequiredIdentity, err)

	_, err = checkConnect("  ")
	assert.Equal(t, ErrRequiredConnect, err)

	connect, err := checkConnect(" 127.0.0.1:2130 ")
	assert.Nil(t, err)
	assert.Equal(t, "127.0.0.1:2130", connect)

	_, err = checkDescription("")
	assert.Equal(t, ErrRequiredDescription, err)

	_, err = checkPartnerName(" ")
	assert.Equal(t, ErrRequiredName, err)
}

func TestCheckSeed(t *testing.T) {
	testSeed, err := keypair.NewSeed(true)
	assert.Nil(t, err)
	liveSeed, err := keypair.NewSeed(false)
	assert.Nil(t, err)

	_, err = checkSeed(testSeed, chain.Local)
	assert.Nil(t, err)
	_, err = checkSeed(liveSeed, chain.Live)
	assert.Nil(t, err)

	_, err = checkSeed(testSeed, chain.Live)
	assert.Equal(t, ErrSeedNetworkMismatch, err)
	_, err = checkSeed(liveSeed, chain.Testing)
	assert.Equal(t, ErrSeedNetworkMismatch, err)

	_, err = checkSeed("not-a-seed", chain.Testing)
	assert.NotNil(t, err)
}

func TestSelectSeed(t *testing.T) {
	_, err := selectSeed("", false, chain.Testing)
	assert.Equal(t, ErrRequiredSeedOrNew, err)

	seed, err := selectSeed("", true, chain.Testing)
	assert.Nil(t, err)

	k, err := keypair.FromSeed(seed)
	assert.Nil(t, err)
	assert.True(t, k.IsTesting())
}

func TestCheckAccount(t *testing.T) {
	config := &configuration.Configuration{
		Identities: make(map[string]configuration.Identity),
	}
	err := config.AddReceiveOnlyIdentity("bob", "Bob", fixtures.Bob.Account.String())
	assert.Nil(t, err)

	acc, err := checkAccount(config, "bob")
	assert.Nil(t, err)
	assert.True(t, fixtures.Bob.Account.Equal(acc))

	acc, err = checkAccount(config, fixtures.Carol.Account.String())
	assert.Nil(t, err)
	assert.True(t, fixtures.Carol.Account.Equal(acc))

	_, err = checkAccount(config, "")
	assert.Equal(t, ErrRequiredAccount, err)

	_, err = checkAccount(config, "nobody")
	assert.NotNil(t, err)

	acc, err = checkOptionalAccount(config, "", "bob")
	assert.Nil(t, err)
	assert.True(t, fixtures.Bob.Account.Equal(acc))
}

func TestCheckTxId(t *testing.T) {
	_, err := checkTxId("")
	assert.Equal(t, ErrRequiredTransactionId, err)

	var expected ledger.Digest
	expected[0] = 0xab
	expected[31] = 0x01

	actual, err := checkTxId(expected.String())
	assert.Nil(t, err)
	assert.Equal(t, expected, actual)

	_, err = checkTxId("zz")
	assert.NotNil(t, err)
}

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()

	isDir, err := checkFileExists(dir)
	assert.Nil(t, err)
	assert.True(t, isDir)

	_, err = checkFileExists(dir + "/missing")
	assert.True(t, os.IsNotExist(err))
}
