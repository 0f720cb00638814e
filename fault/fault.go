// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EncodingError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBadIssuance            = RecordError("issuance signature does not verify against issuer")
	ErrBrokenLink             = RecordError("transfer signature does not verify against previous owner")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey = InvalidError("cannot decode private key")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrDuplicateIdentity      = ExistsError("duplicate identity")
	ErrEmptyChain             = RecordError("transfer chain is empty")
	ErrForkedChain            = ExistsError("transfer chain forks from stored chain")
	ErrIdentityNotFound       = NotFoundError("identity not found")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidIdentity        = InvalidError("invalid identity")
	ErrInvalidKeyLength       = LengthError("invalid key length")
	ErrInvalidKeyType         = InvalidError("invalid key type")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidReference       = InvalidError("invalid asset reference")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidStatsRange      = InvalidError("invalid stats range")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingOwner           = EncodingError("missing owner account")
	ErrMonsterNotFound        = NotFoundError("monster not found")
	ErrNotFingerprint         = InvalidError("not a fingerprint")
	ErrNotConfigurationTable  = InvalidError("configuration did not return a table")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotIssuer              = InvalidError("signer is not the issuer")
	ErrNotMonsterPack         = RecordError("not a monster pack")
	ErrNotOwner               = InvalidError("signer does not own the monster")
	ErrNotPrivateKey          = InvalidError("not a private key")
	ErrNotPublicKey           = InvalidError("not a public key")
	ErrNotTransferPack        = RecordError("not a transfer pack")
	ErrReferenceTooLong       = LengthError("asset reference too long")
	ErrSignatureTooLong       = LengthError("signature too long")
	ErrStaleChain             = ExistsError("transfer chain is older than stored chain")
	ErrTrailingData           = RecordError("trailing data after record")
	ErrTransactionInUse       = ProcessError("transaction already in use")
	ErrUnknownRecordTag       = RecordError("unknown record tag")
	ErrUnsupportedMessage     = EncodingError("unsupported message")
	ErrUnsupportedVersion     = RecordError("unsupported record version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EncodingError) Error() string { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrEncoding(e error) bool { _, ok := e.(EncodingError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
