// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/storage"
)

// owner index key: account bytes ++ uuid
func ownerKey(owner *account.Account, id uuid.UUID) []byte {
	b := owner.Bytes()
	key := make([]byte, 0, len(b)+len(id))
	key = append(key, b...)
	return append(key, id[:]...)
}

// Owned - ids of the monsters currently owned by owner, in id order
func (l *Ledger) Owned(owner *account.Account) ([]uuid.UUID, error) {
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.ErrMissingOwner
	}

	prefix := owner.Bytes()
	ids := []uuid.UUID{}

	cursor := storage.Pool.OwnerIndex.NewPrefixCursor(prefix)
	err := cursor.Map(func(key []byte, value []byte) error {
		id, err := uuid.FromBytes(key[len(prefix):])
		if nil != err {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}

// IsOwned - true if the owner index maps owner to id
func (l *Ledger) IsOwned(owner *account.Account, id uuid.UUID) bool {
	if nil == owner || nil == owner.AccountInterface {
		return false
	}
	return storage.Pool.OwnerIndex.Has(ownerKey(owner, id))
}
