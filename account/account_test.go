// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
)

// deterministic test key
func testKey(t *testing.T, fill byte) (*account.Account, ed25519.PrivateKey) {
	seed := bytes.Repeat([]byte{fill}, ed25519.SeedSize)
	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := account.FromBytes(privateKey.Public().(ed25519.PublicKey))
	require.Nil(t, err, "account from bytes")
	return a, privateKey
}

func TestRoundTripBase58(t *testing.T) {
	a, _ := testKey(t, 0x11)

	b, err := account.FromBase58(a.String())
	require.Nil(t, err)
	assert.True(t, a.Equal(b), "accounts differ")
	assert.Equal(t, a.Address(), b.Address())
	assert.Equal(t, a.String(), a.Address().String(), "account and address text differ")
}

func TestInvalidAccounts(t *testing.T) {
	_, err := account.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidKeyLength, err)

	_, err = account.FromBase58("not-base58-0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err)

	var nilAccount *account.Account
	a, _ := testKey(t, 0x01)
	assert.False(t, nilAccount.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestCheckSignature(t *testing.T) {
	a, privateKey := testKey(t, 0x22)
	other, otherKey := testKey(t, 0x23)

	message := []byte("wedding vows")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	assert.Nil(t, a.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, other.CheckSignature(message, signature))
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature([]byte("other vows"), signature))
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature(message, signature[:10]))

	otherSignature := ed25519.Sign(otherKey, message)
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature(message, otherSignature))
}

func TestJSON(t *testing.T) {
	a, privateKey := testKey(t, 0x44)
	signature := account.Signature(ed25519.Sign(privateKey, []byte("x")))

	type holder struct {
		Owner     *account.Account  `json:"owner"`
		Signature account.Signature `json:"signature"`
	}
	buffer, err := json.Marshal(holder{Owner: a, Signature: signature})
	require.Nil(t, err)

	expected := `{"owner":"` + a.String() + `","signature":"` + hex.EncodeToString(signature) + `"}`
	assert.Equal(t, expected, string(buffer))

	var back holder
	require.Nil(t, json.Unmarshal(buffer, &back))
	assert.True(t, a.Equal(back.Owner))
	assert.Equal(t, signature, back.Signature)
}
