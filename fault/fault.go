// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse          = ExistsError("account already in use")
	ErrAccountNotFound              = NotFoundError("account not found")
	ErrAddressDerivationExhausted   = ProcessError("unable to find a viable program address bump seed")
	ErrAddressMismatch              = InvalidError("meme account does not match derived address")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAlreadyRegistered            = ExistsError("meme already registered")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrDataTooLong                  = LengthError("instruction data too long")
	ErrFieldTooLarge                = LengthError("field exceeds record space budget")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound         = NotFoundError("identity name not found")
	ErrInsufficientFunds            = ResourceError("insufficient funds for account creation")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidConfiguration         = InvalidError("configuration did not return a table")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidFingerprint           = InvalidError("invalid fingerprint")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidLamports              = InvalidError("invalid lamports")
	ErrInvalidPasswordLength        = LengthError("invalid password length")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidProgramId             = InvalidError("instruction is for a different program")
	ErrInvalidRecord                = InvalidError("account data is not a meme record")
	ErrInvalidSeeds                 = InvalidError("provided seeds do not result in a valid address")
	ErrInvalidSignature             = AuthorisationError("invalid signature")
	ErrInvalidString                = InvalidError("string is not valid UTF-8")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidSystemProgram         = InvalidError("system program account is not the system program")
	ErrInvalidTransactionId         = InvalidError("invalid transaction id")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMaxSeedLengthExceeded        = LengthError("length of the seed is too long for address generation")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAvailableOnChain          = InvalidError("not available on this chain")
	ErrNotEnoughAccounts            = InvalidError("not enough account keys given to the instruction")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrSignatureTooShort            = LengthError("signature too short")
	ErrTooManyAccounts              = LengthError("too many accounts")
	ErrTooManySignatures            = LengthError("too many signatures")
	ErrTrailingTransactionData      = LengthError("unexpected data after transaction")
	ErrTruncatedInstruction         = LengthError("instruction data is truncated")
	ErrTruncatedRecord              = LengthError("record data is truncated")
	ErrTruncatedTransaction         = LengthError("transaction data is truncated")
	ErrUnauthorizedSigner           = AuthorisationError("submitter did not sign the transaction")
	ErrUnknownInstruction           = InvalidError("unknown instruction")
	ErrUnknownTransactionTag        = InvalidError("unknown transaction tag")
	ErrWrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ResourceError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool      { _, ok := e.(ResourceError); return ok }
