// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
)

// seed layout: header(3) ++ network(1) ++ core(32) ++ checksum(4)
var seedHeader = []byte{0x5a, 0xfe, 0x02}

const (
	seedCoreLength     = ed25519.SeedSize
	seedChecksumLength = 4
	seedLength         = 3 + 1 + seedCoreLength + seedChecksumLength
)

// errors
var (
	ErrInvalidSeed = fault.InvalidError("invalid seed")
)

// KeyPair - the signing side of an identity
type KeyPair struct {
	Seed       string
	Account    *account.Account
	PrivateKey ed25519.PrivateKey
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	return newSeedFrom(rand.Reader, test)
}

func newSeedFrom(r io.Reader, test bool) (string, error) {
	seedCore := make([]byte, seedCoreLength)
	if _, err := io.ReadFull(r, seedCore); nil != err {
		return "", err
	}
	return packSeed(seedCore, test), nil
}

func packSeed(seedCore []byte, test bool) string {
	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := append([]byte{}, seedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:seedChecksumLength]...)
	return base58.Encode(packedSeed)
}

// New - create a fresh seed and its keys
func New(test bool) (*KeyPair, error) {
	seed, err := NewSeed(test)
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - regenerate the keys from a base58 seed
func FromSeed(seed string) (*KeyPair, error) {
	packedSeed, err := base58.Decode(seed)
	if nil != err || seedLength != len(packedSeed) {
		return nil, ErrInvalidSeed
	}
	if !bytes.Equal(seedHeader, packedSeed[:len(seedHeader)]) {
		return nil, ErrInvalidSeed
	}

	checksumStart := len(packedSeed) - seedChecksumLength
	checksum := sha3.Sum256(packedSeed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], packedSeed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	seedCore := packedSeed[len(seedHeader)+1 : checksumStart]
	return FromSeedCore(seed, seedCore)
}

// FromSeedCore - keys from the raw 32 byte ed25519 seed
func FromSeedCore(seed string, seedCore []byte) (*KeyPair, error) {
	if ed25519.SeedSize != len(seedCore) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seedCore)
	a, err := account.FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Seed:       seed,
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// IsTesting - the seed was generated for a test chain
func (k *KeyPair) IsTesting() bool {
	packedSeed, err := base58.Decode(k.Seed)
	if nil != err || seedLength != len(packedSeed) {
		return false
	}
	return 0x01 == packedSeed[len(seedHeader)]
}

// Sign - sign a message with the private key
func (k *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(k.PrivateKey, message)
}
