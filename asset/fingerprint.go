// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/monsterchain/fault"
)

// limits
const (
	FingerprintLength = 64
)

// Fingerprint - SHA3-512 digest of resource content
// represented as hex text for JSON encoding
type Fingerprint [FingerprintLength]byte

// NewFingerprint - digest a resource already in memory
func NewFingerprint(content []byte) Fingerprint {
	return Fingerprint(sha3.Sum512(content))
}

// FingerprintFile - digest the resource named by a reference
func FingerprintFile(fileName string) (Fingerprint, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return Fingerprint{}, err
	}
	defer f.Close()

	return FingerprintReader(f)
}

// FingerprintReader - digest a stream
func FingerprintReader(r io.Reader) (Fingerprint, error) {
	h := sha3.New512()
	if _, err := io.Copy(h, r); nil != err {
		return Fingerprint{}, err
	}

	var fingerprint Fingerprint
	copy(fingerprint[:], h.Sum(nil))
	return fingerprint, nil
}

// String - convert a fingerprint to hex string for use by the fmt package (for %s)
func (fingerprint Fingerprint) String() string {
	return hex.EncodeToString(fingerprint[:])
}

// GoString - convert a fingerprint to hex string for use by the fmt package (for %#v)
func (fingerprint Fingerprint) GoString() string {
	return "<fingerprint:" + hex.EncodeToString(fingerprint[:]) + ">"
}

// Scan - convert a hex text representation to a fingerprint for use by the format package scan routines
func (fingerprint *Fingerprint) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(FingerprintLength) {
		return fault.ErrNotFingerprint
	}

	byteCount, err := hex.Decode(fingerprint[:], token)
	if nil != err {
		return err
	}

	if FingerprintLength != byteCount {
		return fault.ErrNotFingerprint
	}
	return nil
}

// MarshalText - convert fingerprint to hex text
func (fingerprint Fingerprint) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(fingerprint))
	buffer := make([]byte, size)
	hex.Encode(buffer, fingerprint[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a fingerprint
func (fingerprint *Fingerprint) UnmarshalText(s []byte) error {
	if len(fingerprint) != hex.DecodedLen(len(s)) {
		return fault.ErrNotFingerprint
	}
	byteCount, err := hex.Decode(fingerprint[:], s)
	if nil != err {
		return fault.ErrNotFingerprint
	}
	if FingerprintLength != byteCount {
		return fault.ErrNotFingerprint
	}
	return nil
}

// Matches - true if the content digests to this fingerprint
func (fingerprint Fingerprint) Matches(content []byte) bool {
	return NewFingerprint(content) == fingerprint
}
