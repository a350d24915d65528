// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
)

// Account - an identity on the ledger
//
// the identity is the ed25519 public key and its ledger address is the
// key itself, so identities and derived records share one address space
type Account struct {
	PublicKey ed25519.PublicKey
}

// FromBase58 - convert a Base58 encoded public key into an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	a, err := address.FromBase58(accountBase58Encoded)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return FromAddress(a), nil
}

// FromBytes - convert a raw 32 byte public key into an account
func FromBytes(accountBytes []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(accountBytes) {
		return nil, fault.ErrInvalidKeyLength
	}
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes)
	return &Account{
		PublicKey: publicKey,
	}, nil
}

// FromAddress - the account whose ledger address is a
func FromAddress(a address.Address) *Account {
	return &Account{
		PublicKey: a.Bytes(),
	}
}

// Address - the ledger address holding this identity's lamports
func (account *Account) Address() address.Address {
	a := address.Address{}
	copy(a[:], account.PublicKey)
	return a
}

// Bytes - raw public key
func (account *Account) Bytes() []byte {
	return account.Address().Bytes()
}

// Equal - same public key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Address() == other.Address()
}

// CheckSignature - verify an ed25519 signature over message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.ErrInvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 encoding of the public key
func (account *Account) String() string {
	return account.Address().String()
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	account.PublicKey = a.PublicKey
	return nil
}
