// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/monsterchain/account"
)

// ReadFile - read a JSON identity file: name → base58 account
func ReadFile(fileName string) (map[string]*account.Account, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	identities := make(map[string]*account.Account)
	err = json.Unmarshal(data, &identities)
	if nil != err {
		return nil, err
	}
	return identities, nil
}

// WriteFile - write all identities of a registry as JSON
func (r *Registry) WriteFile(fileName string) error {
	r.RLock()
	identities := make(map[string]*account.Account, len(r.accounts))
	for name, owner := range r.accounts {
		identities[name] = owner
	}
	r.RUnlock()

	data, err := json.MarshalIndent(identities, "", "  ")
	if nil != err {
		return err
	}

	// write to a temporary then rename so a watcher never sees a
	// partial file
	temporary := fileName + ".new"
	err = ioutil.WriteFile(temporary, append(data, '\n'), 0600)
	if nil != err {
		return err
	}
	return os.Rename(temporary, fileName)
}

// Load - replace the registry contents from an identity file
func (r *Registry) Load(fileName string) error {
	identities, err := ReadFile(fileName)
	if nil != err {
		return err
	}
	return r.Replace(identities)
}
