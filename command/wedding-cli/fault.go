// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/weddingd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAnswerRequired         = fault.InvalidError("exactly one of yes or no is required")
	ErrInvalidNetwork         = fault.InvalidError("invalid network")
	ErrInvalidPasswordLength  = fault.InvalidError("password must be at least 8 characters")
	ErrNilKeyPair             = fault.ProcessError("internal error: nil key pair")
	ErrNoConnection           = fault.NotFoundError("no weddingd connection configured")
	ErrPasswordMismatch       = fault.InvalidError("passwords do not match")
	ErrRequiredAccount        = fault.InvalidError("account is required")
	ErrRequiredConnect        = fault.InvalidError("connect is required")
	ErrRequiredDescription    = fault.InvalidError("description is required")
	ErrRequiredIdentity       = fault.InvalidError("identity is required")
	ErrRequiredName           = fault.InvalidError("partner name is required")
	ErrRequiredSeedOrNew      = fault.InvalidError("one of seed, new or account is required")
	ErrRequiredTransactionId  = fault.InvalidError("transaction id is required")
	ErrSeedNetworkMismatch    = fault.InvalidError("seed is not for this network")
	ErrUnconfiguredConfigFile = fault.ProcessError("configuration was not loaded")
)
