// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/keypair"
	"github.com/bitmark-inc/weddingd/transaction"
)

func TestPackUnpack(t *testing.T) {
	alice := fixtures.Alice
	bob := fixtures.Bob
	carol := fixtures.Carol

	tests := []struct {
		signer      *keypair.KeyPair
		instruction transaction.Instruction
	}{
		{carol, &transaction.SetupWedding{Creator: carol.Account, UserA: alice.Account, UserB: bob.Account}},
		{alice, &transaction.SetupPartner{User: alice.Account, Other: bob.Account, Name: "Alice", Vows: "always"}},
		{alice, &transaction.GiveAnswer{User: alice.Account, Other: bob.Account, Answer: true}},
		{bob, &transaction.Divorce{User: bob.Account, Other: alice.Account, Creator: carol.Account}},
		{bob, &transaction.CancelWedding{User: bob.Account, Creator: carol.Account, UserA: alice.Account, UserB: bob.Account}},
		{alice, &transaction.ClosePartner{User: alice.Account, Other: bob.Account}},
	}

	for i, item := range tests {
		tx := transaction.New(uint64(i+1), item.instruction)
		require.Nil(t, tx.Sign(item.signer), "%d: sign", i)

		packed, err := tx.Pack()
		require.Nil(t, err, "%d: pack", i)

		u, err := packed.Unpack()
		require.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, tx.Nonce, u.Nonce, "%d: wrong nonce", i)
		assert.Equal(t, item.instruction.Tag(), u.Instruction.Tag(), "%d: wrong tag", i)
		assert.Equal(t, item.instruction, u.Instruction, "%d: wrong instruction", i)

		repacked, err := u.Pack()
		require.Nil(t, err, "%d: repack", i)
		assert.Equal(t, packed, repacked, "%d: not canonical", i)
		assert.Equal(t, packed.TxId(), repacked.TxId(), "%d: wrong id", i)
	}
}

func TestNonceChangesId(t *testing.T) {
	i := &transaction.GiveAnswer{User: fixtures.Alice.Account, Other: fixtures.Bob.Account, Answer: true}

	t1 := transaction.New(1, i)
	require.Nil(t, t1.Sign(fixtures.Alice), "sign 1")
	p1, _ := t1.Pack()

	t2 := transaction.New(2, i)
	require.Nil(t, t2.Sign(fixtures.Alice), "sign 2")
	p2, _ := t2.Pack()

	assert.NotEqual(t, p1.TxId(), p2.TxId(), "nonce ignored")
}

func TestSignatureRules(t *testing.T) {
	i := &transaction.SetupWedding{Creator: fixtures.Carol.Account, UserA: fixtures.Alice.Account, UserB: fixtures.Bob.Account}

	tx := transaction.New(7, i)
	assert.Equal(t, fault.ErrMissingSignature, tx.Sign(fixtures.Alice), "non signer signed")

	_, err := tx.Pack()
	assert.Equal(t, fault.ErrInvalidSignature, err, "unsigned pack")

	require.Nil(t, tx.Sign(fixtures.Carol), "sign")
	packed, err := tx.Pack()
	require.Nil(t, err, "pack")

	// flip one bit of the signature
	bad := append(transaction.Packed{}, packed...)
	bad[len(bad)-1] ^= 0x01
	_, err = bad.Unpack()
	assert.Equal(t, fault.ErrInvalidSignature, err, "corrupt signature accepted")

	// change the signed message
	bad = append(transaction.Packed{}, packed...)
	bad[3] ^= 0x01
	_, err = bad.Unpack()
	assert.NotNil(t, err, "corrupt message accepted")
}

func TestUnpackErrors(t *testing.T) {
	i := &transaction.ClosePartner{User: fixtures.Alice.Account, Other: fixtures.Bob.Account}
	tx := transaction.New(1, i)
	require.Nil(t, tx.Sign(fixtures.Alice), "sign")
	packed, err := tx.Pack()
	require.Nil(t, err, "pack")

	_, err = transaction.Packed{}.Unpack()
	assert.Equal(t, fault.ErrNotTransactionPack, err, "empty")

	_, err = transaction.Packed{0x63, 0x00}.Unpack()
	assert.Equal(t, fault.ErrUnknownInstruction, err, "unknown tag")

	_, err = packed[:20].Unpack()
	assert.Equal(t, fault.ErrRecordTruncated, err, "truncated")

	_, err = append(packed, 0x00).Unpack()
	assert.Equal(t, fault.ErrNotTransactionPack, err, "trailing bytes")
}

func TestPackedText(t *testing.T) {
	p := transaction.Packed{0x01, 0xab}
	text, err := p.MarshalText()
	require.Nil(t, err, "marshal")
	assert.Equal(t, "01ab", string(text), "wrong text")

	var u transaction.Packed
	require.Nil(t, u.UnmarshalText(text), "unmarshal")
	assert.Equal(t, p, u, "wrong round trip")
	assert.Equal(t, fault.ErrNotTransactionPack, u.UnmarshalText([]byte("xyz")), "bad hex")
}
