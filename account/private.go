// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/util"
)

// Signer - the capability to sign on behalf of an account
//
// this is all the transfer chain needs from a key provider; a
// PrivateKey is one implementation, a hardware token could be another
type Signer interface {
	Account() *Account
	Sign(message []byte) (Signature, error)
}

// PrivateKey - base type for private keys
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - methods for all private key types
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	PrivateKeyBytes() []byte
	Sign(message []byte) (Signature, error)
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// ED25519PrivateKey - for ed25519 keys
//
// holds the 64 byte form: [32 byte seed][32 byte public key]
type ED25519PrivateKey struct {
	PrivateKey []byte
}

// SECP256K1PrivateKey - for secp256k1 keys, the 32 byte scalar
type SECP256K1PrivateKey struct {
	PrivateKey []byte
}

const secp256k1PrivateKeyLength = btcec.PrivKeyBytesLen

// NewPrivateKey - generate a new key pair for an algorithm
//
// random supplies the key material, normally crypto/rand.Reader
func NewPrivateKey(algorithm int, random io.Reader) (*PrivateKey, error) {
	switch algorithm {
	case ED25519:
		_, priv, err := ed25519.GenerateKey(random)
		if nil != err {
			return nil, err
		}
		return &PrivateKey{PrivateKeyInterface: &ED25519PrivateKey{PrivateKey: priv}}, nil

	case SECP256K1:
		scalar := make([]byte, secp256k1PrivateKeyLength)
		if _, err := io.ReadFull(random, scalar); nil != err {
			return nil, err
		}
		priv, _ := btcec.PrivKeyFromBytes(scalar)
		return &PrivateKey{PrivateKeyInterface: &SECP256K1PrivateKey{PrivateKey: priv.Serialize()}}, nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	if len(privateKeyDecoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return PrivateKeyFromBytes(privateKeyDecoded[:checksumStart])
}

// PrivateKeyFromBytes - this converts a byte encoded buffer and returns a private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	keyVariant, keyVariantLength := util.FromVarint64(privateKeyBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.ErrNotPrivateKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	priv := make([]byte, len(privateKeyBytes)-keyVariantLength)
	copy(priv, privateKeyBytes[keyVariantLength:])

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PrivateKeySize != len(priv) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &PrivateKey{PrivateKeyInterface: &ED25519PrivateKey{PrivateKey: priv}}, nil

	case SECP256K1:
		if secp256k1PrivateKeyLength != len(priv) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &PrivateKey{PrivateKeyInterface: &SECP256K1PrivateKey{PrivateKey: priv}}, nil

	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// UnmarshalText - convert Base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = p.PrivateKeyInterface
	return nil
}

// ED25519
// -------

// KeyType - key type code (see enumeration in account.go)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// Account - return the corresponding account
func (privateKey *ED25519PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return &Account{
		AccountInterface: &ED25519Account{
			PublicKey: publicKey,
		},
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - sign a message
func (privateKey *ED25519PrivateKey) Sign(message []byte) (Signature, error) {
	if ed25519.PrivateKeySize != len(privateKey.PrivateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	return ed25519.Sign(privateKey.PrivateKey, message), nil
}

// Bytes - byte slice for encoded key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	return encodeKey(ED25519, 0, privateKey.PrivateKey)
}

// String - base58 encoding of encoded key
func (privateKey *ED25519PrivateKey) String() string {
	return toBase58WithChecksum(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// SECP256K1
// ---------

// KeyType - key type code (see enumeration in account.go)
func (privateKey *SECP256K1PrivateKey) KeyType() int {
	return SECP256K1
}

// Account - return the corresponding account
func (privateKey *SECP256K1PrivateKey) Account() *Account {
	_, publicKey := btcec.PrivKeyFromBytes(privateKey.PrivateKey)
	return &Account{
		AccountInterface: &SECP256K1Account{
			PublicKey: publicKey.SerializeCompressed(),
		},
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *SECP256K1PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - DER signature over sha3-256(message), RFC6979 nonce
func (privateKey *SECP256K1PrivateKey) Sign(message []byte) (Signature, error) {
	if secp256k1PrivateKeyLength != len(privateKey.PrivateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	priv, _ := btcec.PrivKeyFromBytes(privateKey.PrivateKey)
	digest := sha3.Sum256(message)
	return ecdsa.Sign(priv, digest[:]).Serialize(), nil
}

// Bytes - byte slice for encoded key
func (privateKey *SECP256K1PrivateKey) Bytes() []byte {
	return encodeKey(SECP256K1, 0, privateKey.PrivateKey)
}

// String - base58 encoding of encoded key
func (privateKey *SECP256K1PrivateKey) String() string {
	return toBase58WithChecksum(privateKey.Bytes())
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey SECP256K1PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
