// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/weddingd/chain"
	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/keypair"
)

const password = "correct horse battery"

func newConfiguration() *configuration.Configuration {
	return &configuration.Configuration{
		DefaultIdentity: "alice",
		Chain:           chain.Testing,
		Connections:     []string{"127.0.0.1:2130"},
		Identities:      make(map[string]configuration.Identity),
	}
}

func TestAddIdentityAndDecrypt(t *testing.T) {
	k, err := keypair.New(true)
	require.Nil(t, err, "new keypair")

	c := newConfiguration()
	err = c.AddIdentity("alice", "first", k.Seed, password)
	require.Nil(t, err, "add identity")

	id, err := c.Identity("alice")
	require.Nil(t, err, "identity")
	assert.Equal(t, k.Account.String(), id.Account, "wrong account")
	assert.NotContains(t, id.Data, k.Seed, "seed stored in clear")

	a, err := c.Account("alice")
	require.Nil(t, err, "account")
	assert.True(t, k.Account.Equal(a), "wrong account")

	decrypted, err := c.KeyPair(password, "alice")
	require.Nil(t, err, "decrypt")
	assert.Equal(t, k.Seed, decrypted.Seed, "wrong seed")
	assert.Equal(t, k.PrivateKey, decrypted.PrivateKey, "wrong private key")

	_, err = c.KeyPair("not the password", "alice")
	assert.Equal(t, fault.ErrWrongPassword, err, "wrong password accepted")

	err = c.AddIdentity("alice", "again", k.Seed, password)
	assert.Equal(t, configuration.ErrIdentityNameAlreadyExists, err, "duplicate name")

	_, err = c.Identity("bob")
	assert.Equal(t, configuration.ErrIdentityNameNotFound, err, "missing name")
}

func TestReceiveOnlyIdentity(t *testing.T) {
	k, err := keypair.New(true)
	require.Nil(t, err, "new keypair")

	c := newConfiguration()
	err = c.AddReceiveOnlyIdentity("bob", "watch only", k.Account.String())
	require.Nil(t, err, "add receive only")

	a, err := c.Account("bob")
	require.Nil(t, err, "account")
	assert.True(t, k.Account.Equal(a), "wrong account")

	_, err = c.KeyPair(password, "bob")
	assert.Equal(t, configuration.ErrNotPrivateKey, err, "receive only identity decrypted")

	err = c.AddReceiveOnlyIdentity("carol", "bad", "not-base58-0OIl")
	assert.NotNil(t, err, "invalid account accepted")
}

func TestSaveAndLoad(t *testing.T) {
	k, err := keypair.New(true)
	require.Nil(t, err, "new keypair")

	c := newConfiguration()
	require.Nil(t, c.AddIdentity("alice", "first", k.Seed, password), "add identity")

	filename := filepath.Join(t.TempDir(), "testing-wedding-cli.json")
	require.Nil(t, configuration.Save(filename, c), "first save")
	require.Nil(t, configuration.Save(filename, c), "second save")

	_, err = os.Stat(filename + ".bk")
	assert.Nil(t, err, "no backup file")

	loaded, err := configuration.Load(filename)
	require.Nil(t, err, "load")
	assert.Equal(t, c, loaded, "configuration changed")

	decrypted, err := loaded.KeyPair(password, "alice")
	require.Nil(t, err, "decrypt after load")
	assert.Equal(t, k.Seed, decrypted.Seed, "wrong seed")
}

func TestSaltText(t *testing.T) {
	salt, err := configuration.MakeSalt()
	require.Nil(t, err, "make salt")

	text, err := salt.MarshalText()
	require.Nil(t, err, "marshal")

	var s configuration.Salt
	require.Nil(t, s.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *salt, s, "salt changed")

	assert.Equal(t, configuration.ErrInvalidSalt, s.UnmarshalText([]byte("abcd")), "short salt accepted")
}
