// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/keypair"
)

// key derivation cost
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLength    = 32
	nonceLength  = 24
)

// errors
var (
	ErrCryptoFailed = fault.ProcessError("encrypt or decrypt failed")
)

// decryptIdentity - check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*keypair.KeyPair, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if nil != err || identity.Data == "" {
		return nil, ErrNotPrivateKey
	}

	seed, err := decryptData(identity.Data, generateKey(password, salt))
	if nil != err {
		return nil, fault.ErrWrongPassword
	}

	return keypair.FromSeed(seed)
}

func hashPassword(password string) (*Salt, *[keyLength]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	return salt, generateKey(password, salt), nil
}

func generateKey(password string, salt *Salt) *[keyLength]byte {
	hash := argon2.IDKey([]byte(password), salt.Bytes(), argonTime, argonMemory, argonThreads, keyLength)

	var secretKey [keyLength]byte
	copy(secretKey[:], hash)
	return &secretKey
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[keyLength]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", ErrCryptoFailed
	}

	// a random 192 bit nonce per message
	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[keyLength]byte) (string, error) {

	if ciphertext == "" {
		return "", ErrCryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return "", err
	}
	if len(encrypted) <= nonceLength {
		return "", ErrCryptoFailed
	}

	// nonce is stored in front of the sealed box
	var nonce [nonceLength]byte
	copy(nonce[:], encrypted[:nonceLength])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceLength:], &nonce, secretKey)
	if !ok {
		return "", ErrCryptoFailed
	}

	return string(decrypted), nil
}
