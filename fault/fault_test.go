// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/fault"
)

var (
	ErrEncodingOne = fault.EncodingError("encoding one")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrRecordOne   = fault.RecordError("record one")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		encoding bool
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrEncodingOne, true, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, false, false, true},
		{fault.ErrUnsupportedMessage, true, false, false, false, false, false, false},
		{fault.ErrBrokenLink, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEncoding(err) != e.encoding {
			t.Errorf("%d: expected 'encoding' == %v for err = %v", i, e.encoding, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestChainError(t *testing.T) {
	cause := fault.ErrInvalidSignature
	err := error(fault.NewChainError(fault.ErrBrokenLink, 3, cause))

	assert.True(t, fault.IsErrChain(err), "not a chain error")
	assert.True(t, errors.Is(err, fault.ErrBrokenLink), "reason not unwrapped")
	assert.False(t, errors.Is(err, fault.ErrBadIssuance), "wrong reason matched")
	assert.Equal(t, 3, fault.ChainIndex(err), "wrong index")
	assert.Equal(t, "chain invalid at transfer: 3: transfer signature does not verify against previous owner: invalid signature", err.Error())

	wrapped := fmt.Errorf("load: %w", err)
	assert.True(t, fault.IsErrChain(wrapped), "wrapped chain error not detected")
	assert.Equal(t, 3, fault.ChainIndex(wrapped), "wrong wrapped index")

	assert.False(t, fault.IsErrChain(fault.ErrEmptyChain), "plain error detected as chain error")
	assert.Equal(t, -1, fault.ChainIndex(fault.ErrEmptyChain), "plain error has index")
}
