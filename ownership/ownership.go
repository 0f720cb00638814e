// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/monster"
)

//go:generate mockgen -destination=mocks/directory.go -package=mocks github.com/bitmark-inc/monsterchain/ownership Directory

// Directory - maps an account to a human readable name
type Directory interface {
	Name(owner *account.Account) (string, bool)
}

// CurrentOwner - the owner of the last transfer
//
// the chain is not validated
func CurrentOwner(m *monster.Monster) *account.Account {
	return m.Owner()
}

// Describe - the name of an account if the directory has one,
// otherwise its base58 form
func Describe(directory Directory, owner *account.Account) string {
	if nil == owner || nil == owner.AccountInterface {
		return "<none>"
	}
	if nil != directory {
		if name, ok := directory.Name(owner); ok {
			return name
		}
	}
	return owner.String()
}

// History - describe every owner of a monster in chain order
func History(directory Directory, m *monster.Monster) []string {
	owners := m.Provenance()
	names := make([]string, len(owners))
	for i, owner := range owners {
		names[i] = Describe(directory, owner)
	}
	return names
}
