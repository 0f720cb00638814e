// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package monster_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
)

// keys made from a fixed seed so every run signs the same bytes
func makeKey(t *testing.T, algorithm int, seed byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(algorithm, bytes.NewReader(bytes.Repeat([]byte{seed}, 64)))
	if nil != err {
		t.Fatalf("generate key: %d error: %s", seed, err)
	}
	return key
}

// check a validation result is a chain error with reason and index
func assertChainError(t *testing.T, err error, reason error, index int) {
	t.Helper()

	if nil == err {
		t.Fatalf("validated  expected: %s at: %d", reason, index)
	}
	var chainError *fault.ChainError
	if !errors.As(err, &chainError) {
		t.Fatalf("error: %v  is not a chain error", err)
	}
	if reason != chainError.Reason {
		t.Errorf("reason: %s  expected: %s", chainError.Reason, reason)
	}
	if index != chainError.Index {
		t.Errorf("index: %d  expected: %d", chainError.Index, index)
	}
}

// a signer that always fails
type brokenSigner struct {
	key *account.PrivateKey
}

var errSignerOffline = errors.New("signer offline")

func (s brokenSigner) Account() *account.Account {
	return s.key.Account()
}

func (s brokenSigner) Sign(message []byte) (account.Signature, error) {
	return nil, errSignerOffline
}
