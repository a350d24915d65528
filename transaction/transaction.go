// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed instructions submitted to the ledger
//
// packed form:
//   uvarint(tag) ++ uvarint(nonce) ++ fields ++
//   uvarint(signature count) ++ signature(64) ...
//
// the signed message is everything before the signature count and the
// transaction id is the SHA3-256 of the whole packed form
package transaction

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/keypair"
	"github.com/bitmark-inc/weddingd/ledger"
)

// MaximumSignatures - no instruction needs more signers than this
const MaximumSignatures = 4

// Packed - packed transaction bytes
type Packed []byte

// Transaction - an instruction with its signatures
//
// the nonce separates otherwise identical instructions so that a
// repeated request is not a replay
type Transaction struct {
	Nonce       uint64              `json:"nonce"`
	Instruction Instruction         `json:"instruction"`
	Signatures  []account.Signature `json:"signatures"`
}

// New - an unsigned transaction
func New(nonce uint64, instruction Instruction) *Transaction {
	return &Transaction{
		Nonce:       nonce,
		Instruction: instruction,
	}
}

// Message - the bytes covered by the signatures
func (t *Transaction) Message() []byte {
	buffer := appendUvarint(nil, uint64(t.Instruction.Tag()))
	buffer = appendUvarint(buffer, t.Nonce)
	return t.Instruction.packFields(buffer)
}

// Sign - add the signature of one required signer
func (t *Transaction) Sign(k *keypair.KeyPair) error {
	signers := t.Instruction.Signers()
	if len(t.Signatures) != len(signers) {
		t.Signatures = make([]account.Signature, len(signers))
	}
	message := t.Message()
	signed := false
	for i, s := range signers {
		if s.Equal(k.Account) {
			t.Signatures[i] = k.Sign(message)
			signed = true
		}
	}
	if !signed {
		return fault.ErrMissingSignature
	}
	return nil
}

// Verify - every required signer has a valid signature
func (t *Transaction) Verify() error {
	signers := t.Instruction.Signers()
	if len(signers) != len(t.Signatures) {
		return fault.ErrMissingSignature
	}
	message := t.Message()
	for i, s := range signers {
		if nil == s {
			return fault.ErrMissingSignature
		}
		if err := s.CheckSignature(message, t.Signatures[i]); nil != err {
			return err
		}
	}
	return nil
}

// Pack - the complete signed transaction
func (t *Transaction) Pack() (Packed, error) {
	if nil == t.Instruction {
		return nil, fault.ErrUnknownInstruction
	}
	if err := t.Verify(); nil != err {
		return nil, err
	}
	buffer := t.Message()
	buffer = appendUvarint(buffer, uint64(len(t.Signatures)))
	for _, s := range t.Signatures {
		buffer = append(buffer, s...)
	}
	return buffer, nil
}

// Unpack - decode and verify a packed transaction
func (record Packed) Unpack() (*Transaction, error) {
	r := &reader{buffer: record}

	tag := TagType(r.uvarint())
	nonce := r.uvarint()

	var instruction Instruction
	switch tag {
	case SetupWeddingTag:
		instruction = &SetupWedding{
			Creator: r.account(),
			UserA:   r.account(),
			UserB:   r.account(),
		}
	case SetupPartnerTag:
		instruction = &SetupPartner{
			User:  r.account(),
			Other: r.account(),
			Name:  r.string(),
			Vows:  r.string(),
		}
	case GiveAnswerTag:
		instruction = &GiveAnswer{
			User:   r.account(),
			Other:  r.account(),
			Answer: r.bool(),
		}
	case DivorceTag:
		instruction = &Divorce{
			User:    r.account(),
			Other:   r.account(),
			Creator: r.account(),
		}
	case CancelWeddingTag:
		instruction = &CancelWedding{
			User:    r.account(),
			Creator: r.account(),
			UserA:   r.account(),
			UserB:   r.account(),
		}
	case ClosePartnerTag:
		instruction = &ClosePartner{
			User:  r.account(),
			Other: r.account(),
		}
	default:
		if nil != r.err {
			return nil, r.err
		}
		return nil, fault.ErrUnknownInstruction
	}

	count := r.uvarint()
	if nil == r.err && count > MaximumSignatures {
		return nil, fault.ErrTooManySignatures
	}
	signatures := make([]account.Signature, 0, count)
	for i := uint64(0); nil == r.err && i < count; i += 1 {
		s := r.bytes(ed25519.SignatureSize)
		if nil != r.err {
			break
		}
		signatures = append(signatures, append(account.Signature{}, s...))
	}
	if nil != r.err {
		return nil, r.err
	}
	if r.n != len(record) {
		return nil, fault.ErrNotTransactionPack
	}

	t := &Transaction{
		Nonce:       nonce,
		Instruction: instruction,
		Signatures:  signatures,
	}
	if err := t.Verify(); nil != err {
		return nil, err
	}
	return t, nil
}

// TxId - the transaction id
func (record Packed) TxId() ledger.Digest {
	return ledger.NewDigest(record)
}

// String - hex form
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - convert packed transaction to hex text for JSON
func (record Packed) MarshalText() ([]byte, error) {
	return []byte(record.String()), nil
}

// UnmarshalText - convert hex text to a packed transaction
func (record *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrNotTransactionPack
	}
	*record = buffer[:n]
	return nil
}
