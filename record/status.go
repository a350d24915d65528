// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/weddingd/fault"
)

// Status - state of a wedding
type Status uint8

// all possible states
const (
	Created   Status = iota
	Marrying  Status = iota
	Married   Status = iota
	Divorcing Status = iota
	Divorced  Status = iota
)

var statusNames = map[Status]string{
	Created:   "created",
	Marrying:  "marrying",
	Married:   "married",
	Divorcing: "divorcing",
	Divorced:  "divorced",
}

// Valid - check that the status is one of the known states
func (status Status) Valid() bool {
	_, ok := statusNames[status]
	return ok
}

// String - lower case name of the state
func (status Status) String() string {
	if s, ok := statusNames[status]; ok {
		return s
	}
	return "*unknown*"
}

// MarshalText - convert status to text for JSON
func (status Status) MarshalText() ([]byte, error) {
	if !status.Valid() {
		return nil, fault.ErrInvalidStatus
	}
	return []byte(status.String()), nil
}

// UnmarshalText - convert status from text for JSON
func (status *Status) UnmarshalText(s []byte) error {
	for k, v := range statusNames {
		if v == string(s) {
			*status = k
			return nil
		}
	}
	return fault.ErrInvalidStatus
}
