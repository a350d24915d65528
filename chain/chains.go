// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// program identifiers (base58) mixed into every derived address
const (
	liveProgram    = "36qCaAFg7XYye43TD56yqkZv6NAcoWNr87Lad15x6G4v"
	testingProgram = "DtKSW1ZDcBJrNEWyvdbLUqeZjTJvDwVxEr6WN88sWs1y"
	localProgram   = "5hkKKetdxchT91MQ3XFUtJicE7c9dGg2oNxst6PcVAfb"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Program - base58 program identifier for a chain, empty if not valid
func Program(name string) string {
	switch name {
	case Live:
		return liveProgram
	case Testing:
		return testingProgram
	case Local:
		return localProgram
	default:
		return ""
	}
}

// IsTesting - chains that can mint lamports out of thin air
func IsTesting(name string) bool {
	return Testing == name || Local == name
}
