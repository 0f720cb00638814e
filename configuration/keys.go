// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
)

// KeyStore - named private keys, stored as base58 in a JSON file
type KeyStore struct {
	fileName string
	keys     map[string]string
}

// OpenKeyStore - read a key file; a missing file is an empty store
func OpenKeyStore(fileName string) (*KeyStore, error) {
	ks := &KeyStore{
		fileName: fileName,
		keys:     make(map[string]string),
	}

	data, err := ioutil.ReadFile(fileName)
	if os.IsNotExist(err) {
		return ks, nil
	}
	if nil != err {
		return nil, err
	}

	err = json.Unmarshal(data, &ks.keys)
	if nil != err {
		return nil, err
	}
	return ks, nil
}

// Get - decode a named key
func (ks *KeyStore) Get(name string) (*account.PrivateKey, error) {
	s, ok := ks.keys[name]
	if !ok {
		return nil, fault.ErrIdentityNotFound
	}
	return account.PrivateKeyFromBase58(s)
}

// Add - store a new named key
func (ks *KeyStore) Add(name string, key *account.PrivateKey) error {
	if "" == name || nil == key || nil == key.PrivateKeyInterface {
		return fault.ErrInvalidIdentity
	}
	if _, ok := ks.keys[name]; ok {
		return fault.ErrDuplicateIdentity
	}
	ks.keys[name] = key.String()
	return nil
}

// Names - sorted key names
func (ks *KeyStore) Names() []string {
	names := make([]string, 0, len(ks.keys))
	for name := range ks.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save - write the store back, readable by the owner only
func (ks *KeyStore) Save() error {
	data, err := json.MarshalIndent(ks.keys, "", "  ")
	if nil != err {
		return err
	}

	dir, base := filepath.Split(ks.fileName)
	if "" == dir {
		dir = "."
	}
	tmp, err := ioutil.TempFile(dir, base+".")
	if nil != err {
		return err
	}
	_, err = tmp.Write(append(data, '\n'))
	if nil == err {
		err = tmp.Chmod(0600)
	}
	if closeErr := tmp.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), ks.fileName)
}
