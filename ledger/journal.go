// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
)

// DigestLength - size of transaction ids and chain digests
const DigestLength = 32

// Digest - SHA3-256 of some data
type Digest [DigestLength]byte

// NewDigest - digest of a packed transaction
func NewDigest(record []byte) Digest {
	return Digest(sha3.Sum256(record))
}

// DigestFromBytes - convert a raw digest
func DigestFromBytes(buffer []byte) (Digest, error) {
	d := Digest{}
	if DigestLength != len(buffer) {
		return d, fault.ErrInvalidKeyLength
	}
	copy(d[:], buffer)
	return d, nil
}

// String - hex form
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText - convert digest to hex text for JSON
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - convert hex text to digest
func (d *Digest) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	digest, err := DigestFromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*d = digest
	return nil
}

// link a transaction onto the chain
func extend(previous Digest, txId Digest) Digest {
	buffer := make([]byte, 0, 2*DigestLength)
	buffer = append(buffer, previous[:]...)
	buffer = append(buffer, txId[:]...)
	return NewDigest(buffer)
}

// Receipt - result of a committed transaction
type Receipt struct {
	TxId     Digest `json:"txId"`
	Sequence uint64 `json:"sequence"`
	Chain    Digest `json:"chain"`
}

// JournalEntry - a committed transaction
type JournalEntry struct {
	Receipt
	Packed []byte `json:"-"`
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}

// next sequence number and current chain digest, lock must be held
func (l *Ledger) head() (uint64, Digest) {
	next, chain := l.db.Pool.Head.GetNB(nil)
	if nil == chain {
		return 1, Digest{}
	}
	d, err := DigestFromBytes(chain)
	if nil != err {
		logger.Panicf("ledger: corrupt head digest: %x", chain)
	}
	return next, d
}

// append to the journal inside the open batch, lock must be held
func (l *Ledger) appendJournal(txId Digest, packed []byte) Receipt {
	sequence, previous := l.head()
	chain := extend(previous, txId)

	l.db.Pool.Transactions.PutNB(txId[:], sequence, packed)
	l.db.Pool.Journal.Put(sequenceKey(sequence), append(txId[:], chain[:]...))
	l.db.Pool.Head.PutNB(nil, sequence+1, chain[:])

	return Receipt{
		TxId:     txId,
		Sequence: sequence,
		Chain:    chain,
	}
}

// Head - number of committed transactions and the current chain digest
func (l *Ledger) Head() (uint64, Digest) {
	l.Lock()
	defer l.Unlock()
	next, chain := l.head()
	return next - 1, chain
}

// Journal - fetch a committed transaction by its id
func (l *Ledger) Journal(txId Digest) (*JournalEntry, error) {
	l.Lock()
	defer l.Unlock()

	sequence, packed := l.db.Pool.Transactions.GetNB(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}

	link := l.db.Pool.Journal.Get(sequenceKey(sequence))
	if 2*DigestLength != len(link) {
		logger.Panicf("ledger: corrupt journal at: %d", sequence)
	}
	chain, _ := DigestFromBytes(link[DigestLength:])

	p := make([]byte, len(packed))
	copy(p, packed)
	return &JournalEntry{
		Receipt: Receipt{
			TxId:     txId,
			Sequence: sequence,
			Chain:    chain,
		},
		Packed: p,
	}, nil
}

// Verify - recompute the chain from the first transaction
//
// returns the number of transactions checked
func (l *Ledger) Verify() (uint64, error) {
	l.Lock()
	defer l.Unlock()

	next, expected := l.head()
	chain := Digest{}
	for sequence := uint64(1); sequence < next; sequence += 1 {
		link := l.db.Pool.Journal.Get(sequenceKey(sequence))
		if 2*DigestLength != len(link) {
			return sequence - 1, fault.ErrInvalidChain
		}
		txId, _ := DigestFromBytes(link[:DigestLength])
		_, packed := l.db.Pool.Transactions.GetNB(txId[:])
		if nil == packed || NewDigest(packed) != txId {
			return sequence - 1, fault.ErrInvalidChain
		}
		chain = extend(chain, txId)
		if !bytes.Equal(chain[:], link[DigestLength:]) {
			return sequence - 1, fault.ErrInvalidChain
		}
	}
	if chain != expected {
		return next - 1, fault.ErrInvalidChain
	}
	return next - 1, nil
}
