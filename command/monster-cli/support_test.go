// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/fixtures"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/ownership"
)

func TestCheckID(t *testing.T) {
	_, err := checkID("")
	assert.Equal(t, ErrIDRequired, err, "empty id")

	_, err = checkID("not-a-uuid")
	assert.NotNil(t, err, "bad id")

	id := uuid.New()
	actual, err := checkID(id.String())
	assert.Nil(t, err, "valid id")
	assert.Equal(t, id, actual, "parsed id")
}

func TestCheckAlgorithm(t *testing.T) {
	items := []struct {
		s         string
		algorithm int
		err       error
	}{
		{"", account.ED25519, nil},
		{"ed25519", account.ED25519, nil},
		{"SECP256K1", account.SECP256K1, nil},
		{"rsa", 0, ErrAlgorithm},
	}
	for _, item := range items {
		algorithm, err := checkAlgorithm(item.s)
		assert.Equal(t, item.err, err, item.s)
		assert.Equal(t, item.algorithm, algorithm, item.s)
	}
}

func TestResolveAccount(t *testing.T) {
	alice := fixtures.Key(0x0a).Account()
	bob := fixtures.Key(0x0b).Account()

	identities := ownership.NewRegistry()
	assert.Nil(t, identities.Add("alice", alice), "add alice")

	a, err := resolveAccount(identities, "alice")
	assert.Nil(t, err, "by name")
	assert.True(t, alice.Equal(a), "by name")

	a, err = resolveAccount(identities, bob.String())
	assert.Nil(t, err, "by account")
	assert.True(t, bob.Equal(a), "by account")

	_, err = resolveAccount(identities, "")
	assert.Equal(t, ErrOwnerRequired, err, "empty")

	_, err = resolveAccount(identities, "carol")
	assert.NotNil(t, err, "unknown name")
}

func TestDescribeInvalid(t *testing.T) {
	err := monster.Validate(&monster.Monster{}, fixtures.Issuer().Account())
	assert.Equal(t, "invalid at transfer 0: transfer chain is empty", describeInvalid(err), "chain error")
	assert.Equal(t, "invalid: monster not found", describeInvalid(fault.ErrMonsterNotFound), "other error")
}

func TestPrintJson(t *testing.T) {
	var b bytes.Buffer
	err := printJson(&b, map[string]int{"health": 5})
	assert.Nil(t, err, "print")
	assert.Equal(t, "{\n  \"health\": 5\n}\n", b.String(), "output")
}
