// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/configuration"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/fixtures"
)

func TestKeyStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "keystore")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "keys.json")

	ks, err := configuration.OpenKeyStore(fileName)
	assert.Nil(t, err, "open missing")
	assert.Equal(t, 0, len(ks.Names()), "empty store")

	assert.Nil(t, ks.Add("issuer", fixtures.Issuer()), "add issuer")
	assert.Nil(t, ks.Add("alice", fixtures.Key(0x0a)), "add alice")
	assert.Equal(t, fault.ErrDuplicateIdentity, ks.Add("alice", fixtures.Key(0x0b)), "duplicate")
	assert.Equal(t, fault.ErrInvalidIdentity, ks.Add("", fixtures.Key(0x0b)), "empty name")
	assert.Equal(t, fault.ErrInvalidIdentity, ks.Add("bob", nil), "nil key")

	assert.Nil(t, ks.Save(), "save")

	info, err := os.Stat(fileName)
	assert.Nil(t, err, "stat")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permissions")

	ks, err = configuration.OpenKeyStore(fileName)
	assert.Nil(t, err, "reopen")
	assert.Equal(t, []string{"alice", "issuer"}, ks.Names(), "names")

	key, err := ks.Get("issuer")
	assert.Nil(t, err, "get issuer")
	assert.True(t, fixtures.Issuer().Account().Equal(key.Account()), "issuer account")

	_, err = ks.Get("bob")
	assert.Equal(t, fault.ErrIdentityNotFound, err, "missing name")
}

func TestKeyStoreCorrupt(t *testing.T) {
	dir, err := ioutil.TempDir("", "keystore")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "keys.json")
	_ = ioutil.WriteFile(fileName, []byte("{not json"), 0600)

	_, err = configuration.OpenKeyStore(fileName)
	assert.NotNil(t, err, "corrupt file")
}
