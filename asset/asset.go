// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"unicode/utf8"

	"github.com/bitmark-inc/monsterchain/fault"
)

// limits
const (
	MaxReferenceLength = 1024
)

// Reference - opaque handle to a resource, e.g. an image file name
type Reference string

// NewReference - check and convert a string to a reference
func NewReference(s string) (Reference, error) {
	r := Reference(s)
	if err := r.Validate(); nil != err {
		return "", err
	}
	return r, nil
}

// Validate - a reference must fit the record
func (reference Reference) Validate() error {
	if len(reference) > MaxReferenceLength {
		return fault.ErrReferenceTooLong
	}
	if !utf8.ValidString(string(reference)) {
		return fault.ErrInvalidReference
	}
	return nil
}

// IsEmpty - true if no resource is attached
func (reference Reference) IsEmpty() bool {
	return 0 == len(reference)
}

// String - for the fmt package (%s)
func (reference Reference) String() string {
	return string(reference)
}
