// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// classes for the wedding transitions
//
//   precondition  - "you may not do this yet", state must change first
//   authorisation - "you may never do this", caller or inputs are wrong
//   status        - the agreement is in the wrong state for the request
type PreconditionError GenericError
type AuthorisationError GenericError
type StatusError GenericError

// wedding transition errors
var (
	PartnerDataNotEmpty      = PreconditionError("partner data not empty")
	PartnerBalanceNotZero    = PreconditionError("partner lamports not zero")
	CannotCancel             = PreconditionError("cannot cancel after created status")
	WeddingInitialized       = PreconditionError("partner cannot be closed while wedding is initialized")
	NotWeddingMember         = AuthorisationError("signer is not wedding member")
	InvalidCreator           = AuthorisationError("creator does not match wedding storage")
	PartnerWeddingNotWedding = AuthorisationError("partner wedding does not match account wedding")
	InvalidAnswerStatus      = StatusError("cannot answer during invalid status")
	InvalidDivorceStatus     = StatusError("cannot divorce during invalid status")
)

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse          = ExistsError("account already in use")
	ErrAirdropDisabled              = ProcessError("airdrop is disabled on this chain")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCannotDecodeAddress          = InvalidError("cannot decode address")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrConfigurationMissing         = NotFoundError("configuration is missing")
	ErrInsufficientFunds            = ProcessError("insufficient funds")
	ErrInvalidAnswer                = RecordError("invalid answer flag")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidDirectory             = InvalidError("invalid directory")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidSignature             = AuthorisationError("invalid signature")
	ErrInvalidStatus                = RecordError("invalid status")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidText                  = InvalidError("text is not valid utf-8")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingSignature             = AuthorisationError("missing required signature")
	ErrNameTooLong                  = LengthError("name too long")
	ErrNameTooShort                 = LengthError("name too short")
	ErrNoViableBump                 = ProcessError("unable to find a viable address bump")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotPlainFileName             = InvalidError("file name must not contain a path")
	ErrNotProgramOwned              = ProcessError("account is not owned by the program")
	ErrNotTransactionPack           = RecordError("not transaction pack")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordNotFound               = NotFoundError("record not found")
	ErrRecordTooLarge               = LengthError("record larger than allocated space")
	ErrRecordTruncated              = RecordError("record truncated")
	ErrSamePartner                  = InvalidError("partners must be distinct")
	ErrSeedTooLong                  = LengthError("seed too long")
	ErrTooManySeeds                 = LengthError("too many seeds")
	ErrTooManySignatures            = LengthError("too many signatures")
	ErrTransactionAlreadyExists     = ExistsError("transaction already exists")
	ErrTransactionNotFound          = NotFoundError("transaction not found")
	ErrUnknownInstruction           = RecordError("unknown instruction")
	ErrUnknownStorageBackend        = InvalidError("unknown storage backend")
	ErrVowsTooLong                  = LengthError("vows too long")
	ErrWrongPassword                = InvalidError("wrong password")
	ErrWrongRecordType              = RecordError("wrong record type")
	ErrZeroAmount                   = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e PreconditionError) Error() string  { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e StatusError) Error() string        { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrPrecondition(e error) bool  { _, ok := e.(PreconditionError); return ok }
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrStatus(e error) bool        { _, ok := e.(StatusError); return ok }
