// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
)

// Registry - a mutable directory, safe for concurrent use
type Registry struct {
	sync.RWMutex
	names    map[string]string           // account bytes → name
	accounts map[string]*account.Account // name → account
}

// NewRegistry - create an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names:    make(map[string]string),
		accounts: make(map[string]*account.Account),
	}
}

// Add - give an account a name
//
// both the name and the account must be new to the registry
func (r *Registry) Add(name string, owner *account.Account) error {
	if "" == name {
		return fault.ErrInvalidIdentity
	}
	if nil == owner || nil == owner.AccountInterface {
		return fault.ErrMissingOwner
	}

	r.Lock()
	defer r.Unlock()

	key := string(owner.Bytes())
	if _, ok := r.accounts[name]; ok {
		return fault.ErrDuplicateIdentity
	}
	if _, ok := r.names[key]; ok {
		return fault.ErrDuplicateIdentity
	}

	r.accounts[name] = owner
	r.names[key] = name
	return nil
}

// Remove - forget a name
func (r *Registry) Remove(name string) error {
	r.Lock()
	defer r.Unlock()

	owner, ok := r.accounts[name]
	if !ok {
		return fault.ErrIdentityNotFound
	}
	delete(r.accounts, name)
	delete(r.names, string(owner.Bytes()))
	return nil
}

// Name - the name of an account
func (r *Registry) Name(owner *account.Account) (string, bool) {
	if nil == owner || nil == owner.AccountInterface {
		return "", false
	}

	r.RLock()
	defer r.RUnlock()

	name, ok := r.names[string(owner.Bytes())]
	return name, ok
}

// Lookup - the account for a name
func (r *Registry) Lookup(name string) (*account.Account, error) {
	r.RLock()
	defer r.RUnlock()

	owner, ok := r.accounts[name]
	if !ok {
		return nil, fault.ErrIdentityNotFound
	}
	return owner, nil
}

// Names - all names in sorted order
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	names := make([]string, 0, len(r.accounts))
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count - number of identities
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.accounts)
}

// Replace - swap the whole contents for a new set of identities
//
// the set is checked first; on error nothing changes
func (r *Registry) Replace(identities map[string]*account.Account) error {
	names := make(map[string]string, len(identities))
	accounts := make(map[string]*account.Account, len(identities))

	for name, owner := range identities {
		if "" == name {
			return fault.ErrInvalidIdentity
		}
		if nil == owner || nil == owner.AccountInterface {
			return fault.ErrMissingOwner
		}
		key := string(owner.Bytes())
		if _, ok := names[key]; ok {
			return fault.ErrDuplicateIdentity
		}
		names[key] = name
		accounts[name] = owner
	}

	r.Lock()
	r.names = names
	r.accounts = accounts
	r.Unlock()

	return nil
}
