// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// ChainError - a transfer chain that failed validation
//
// Reason is one of ErrEmptyChain, ErrBadIssuance or ErrBrokenLink and
// Index is the position of the first transfer that failed.  Cause
// holds the underlying verification or encoding error, if any.
type ChainError struct {
	Reason error
	Index  int
	Cause  error
}

// NewChainError - create a chain error for a transfer position
func NewChainError(reason error, index int, cause error) *ChainError {
	return &ChainError{
		Reason: reason,
		Index:  index,
		Cause:  cause,
	}
}

func (e *ChainError) Error() string {
	if nil == e.Cause {
		return fmt.Sprintf("chain invalid at transfer: %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("chain invalid at transfer: %d: %s: %s", e.Index, e.Reason, e.Cause)
}

// Unwrap - allows errors.Is(err, fault.ErrBrokenLink)
func (e *ChainError) Unwrap() error {
	return e.Reason
}

// IsErrChain - true if the error is (or wraps) a chain error
func IsErrChain(e error) bool {
	var c *ChainError
	return errors.As(e, &c)
}

// ChainIndex - index of the failing transfer, -1 if not a chain error
func ChainIndex(e error) int {
	var c *ChainError
	if !errors.As(e, &c) {
		return -1
	}
	return c.Index
}
