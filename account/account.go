// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing   = iota // zero keytype **Just for Testing**
	ED25519   = iota
	SECP256K1 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4 // shift 4 bits to get algorithm

	nothingKeyLength   = 2
	secp256k1KeyLength = btcec.PubKeyBytesLenCompressed
)

// Account - base type for accounts
//
// an account is both the verification key and the identity of an
// owner; two accounts are the same owner if their Bytes() are equal
type Account struct {
	AccountInterface
}

// AccountInterface - methods for all account types
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	PublicKey []byte
}

// SECP256K1Account - for ECDSA signatures on the secp256k1 curve
//
// the public key is held in 33 byte compressed form
type SECP256K1Account struct {
	PublicKey []byte
}

// NothingAccount - just for debugging
type NothingAccount struct {
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}
	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	// copy so the account does not alias the caller's buffer
	publicKey := make([]byte, len(accountBytes)-keyVariantLength)
	copy(publicKey, accountBytes[keyVariantLength:])

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{AccountInterface: &ED25519Account{PublicKey: publicKey}}, nil

	case SECP256K1:
		if secp256k1KeyLength != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		if _, err := btcec.ParsePubKey(publicKey); nil != err {
			return nil, fault.ErrNotPublicKey
		}
		return &Account{AccountInterface: &SECP256K1Account{PublicKey: publicKey}}, nil

	case Nothing:
		if nothingKeyLength != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{AccountInterface: &NothingAccount{PublicKey: publicKey}}, nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// Equal - true if both accounts identify the same owner
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// byte slice for an encoded key: Varint64(variant) followed by the key
func encodeKey(algorithm int, code byte, key []byte) []byte {
	keyVariant := uint64(algorithm<<algorithmShift) | uint64(code)
	return append(util.ToVarint64(keyVariant), key...)
}

// base58 encoding of an encoded key with checksum
func toBase58WithChecksum(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	return encodeKey(ED25519, publicKeyCode, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// SECP256K1
// ---------

// KeyType - key type code (see enumeration above)
func (account *SECP256K1Account) KeyType() int {
	return SECP256K1
}

// PublicKeyBytes - fetch the compressed public key as byte slice
func (account *SECP256K1Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check a DER signature over sha3-256(message)
//
// only the canonical low-S encoding is accepted, so (r, N-s) and
// other re-encodings of a valid signature fail
func (account *SECP256K1Account) CheckSignature(message []byte, signature Signature) error {
	publicKey, err := btcec.ParsePubKey(account.PublicKey)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	if !bytes.Equal(sig.Serialize(), signature) {
		return fault.ErrInvalidSignature
	}
	digest := sha3.Sum256(message)
	if !sig.Verify(digest[:], publicKey) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *SECP256K1Account) Bytes() []byte {
	return encodeKey(SECP256K1, publicKeyCode, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *SECP256K1Account) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account SECP256K1Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// Nothing
// -------

// KeyType - key type code (see enumeration above)
func (account *NothingAccount) KeyType() int {
	return Nothing
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *NothingAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - never succeeds
func (account *NothingAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.ErrInvalidSignature
}

// Bytes - byte slice for encoded key
func (account *NothingAccount) Bytes() []byte {
	return encodeKey(Nothing, publicKeyCode, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *NothingAccount) String() string {
	return toBase58WithChecksum(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account NothingAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}
