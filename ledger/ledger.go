// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/storage"
)

// Ledger - serialised access to the stored monsters
type Ledger struct {
	sync.Mutex
	issuer *account.Account
	log    *logger.L
}

// New - a ledger whose records must verify against issuer
func New(issuer *account.Account, log *logger.L) (*Ledger, error) {
	if nil == issuer || nil == issuer.AccountInterface {
		return nil, fault.ErrMissingOwner
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Ledger{
		issuer: issuer,
		log:    log,
	}, nil
}

// Issuer - the account every issuance must verify against
func (l *Ledger) Issuer() *account.Account {
	return l.issuer
}

// Issue - create and store a new monster
func (l *Ledger) Issue(issuer account.Signer, owner *account.Account, health int64, damage int64, image asset.Reference) (uuid.UUID, *monster.Monster, error) {
	if nil == issuer || !l.issuer.Equal(issuer.Account()) {
		return uuid.Nil, nil, fault.ErrNotIssuer
	}

	m, err := monster.Issue(issuer, owner, health, damage, image)
	if nil != err {
		return uuid.Nil, nil, err
	}

	id, err := uuid.NewRandom()
	if nil != err {
		return uuid.Nil, nil, err
	}

	l.Lock()
	defer l.Unlock()

	err = l.store(id, nil, m)
	if nil != err {
		return uuid.Nil, nil, err
	}

	l.log.Infof("issued: %s  owner: %s", id, owner)
	return id, m, nil
}

// Transfer - move a stored monster to a new owner
//
// the signer must own the current tip
func (l *Ledger) Transfer(id uuid.UUID, current account.Signer, next *account.Account) (*monster.Monster, error) {
	if nil == current {
		return nil, fault.ErrNotOwner
	}

	l.Lock()
	defer l.Unlock()

	m, err := l.load(id)
	if nil != err {
		return nil, err
	}
	previous := m.Owner()

	if !previous.Equal(current.Account()) {
		l.log.Warnf("transfer: %s  signer: %s  is not owner: %s", id, current.Account(), previous)
		return nil, fault.ErrNotOwner
	}

	err = m.Transfer(current, next)
	if nil != err {
		return nil, err
	}

	err = l.store(id, previous, m)
	if nil != err {
		return nil, err
	}

	l.log.Infof("transferred: %s  from: %s  to: %s", id, previous, next)
	return m, nil
}

// Import - store a monster received from elsewhere
//
// a new id is stored as is; a known id is only replaced by a chain
// that extends the stored one
func (l *Ledger) Import(id uuid.UUID, m *monster.Monster) error {
	err := monster.Validate(m, l.issuer)
	if nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	stored, err := l.load(id)
	if fault.ErrMonsterNotFound == err {
		err = l.store(id, nil, m)
		if nil == err {
			l.log.Infof("imported: %s  owner: %s", id, m.Owner())
		}
		return err
	}
	if nil != err {
		return err
	}

	err = compare(stored, m)
	if nil != err {
		l.log.Warnf("import: %s  rejected: %s", id, err)
		return err
	}
	if len(m.Transfers) == len(stored.Transfers) {
		return nil
	}

	err = l.store(id, stored.Owner(), m)
	if nil == err {
		l.log.Infof("imported: %s  extended by: %d", id, len(m.Transfers)-len(stored.Transfers))
	}
	return err
}

// Get - fetch and validate a stored monster
func (l *Ledger) Get(id uuid.UUID) (*monster.Monster, error) {
	return l.load(id)
}

// Has - true if a monster is stored under id
func (l *Ledger) Has(id uuid.UUID) bool {
	return storage.Pool.Monsters.Has(id[:])
}

// All - run f on every stored monster in id order
//
// stops at the first error, including a record that does not validate
func (l *Ledger) All(f func(id uuid.UUID, m *monster.Monster) error) error {
	return l.Scan(func(id uuid.UUID, m *monster.Monster, err error) error {
		if nil != err {
			return err
		}
		return f(id, m)
	})
}

// Scan - run f on every stored record in id order, passing the
// unpack or validation error of a bad record instead of stopping
//
// f must not call back into the ledger
func (l *Ledger) Scan(f func(id uuid.UUID, m *monster.Monster, err error) error) error {
	cursor := storage.Pool.Monsters.NewFetchCursor()
	return cursor.Map(func(key []byte, value []byte) error {
		id, err := uuid.FromBytes(key)
		if nil != err {
			return err
		}
		m, err := l.decode(id, value)
		return f(id, m, err)
	})
}

// read one record
func (l *Ledger) load(id uuid.UUID) (*monster.Monster, error) {
	packed := storage.Pool.Monsters.Get(id[:])
	if nil == packed {
		return nil, fault.ErrMonsterNotFound
	}
	return l.decode(id, packed)
}

func (l *Ledger) decode(id uuid.UUID, packed []byte) (*monster.Monster, error) {
	m, err := monster.Packed(packed).Unpack()
	if nil != err {
		l.log.Errorf("monster: %s  unpack error: %s", id, err)
		return nil, err
	}
	err = monster.Validate(m, l.issuer)
	if nil != err {
		l.log.Errorf("monster: %s  validate error: %s", id, err)
		return nil, err
	}
	return m, nil
}

// write the record and move its index entry in one transaction
func (l *Ledger) store(id uuid.UUID, previous *account.Account, m *monster.Monster) error {
	packed, err := m.Pack()
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Put(storage.Pool.Monsters, id[:], packed)
	if nil != previous {
		trx.Delete(storage.Pool.OwnerIndex, ownerKey(previous, id))
	}
	trx.Put(storage.Pool.OwnerIndex, ownerKey(m.Owner(), id), []byte{})

	return trx.Commit()
}

// incoming must start with every transfer of stored
func compare(stored *monster.Monster, incoming *monster.Monster) error {
	if stored.Health != incoming.Health || stored.Damage != incoming.Damage || stored.Image != incoming.Image {
		return fault.ErrForkedChain
	}

	n := len(stored.Transfers)
	if len(incoming.Transfers) < n {
		n = len(incoming.Transfers)
	}
	for i := 0; i < n; i += 1 {
		s := stored.Transfers[i]
		t := incoming.Transfers[i]
		if !s.Signature.Equal(t.Signature) || !s.Owner.Equal(t.Owner) {
			return fault.ErrForkedChain
		}
	}

	if len(incoming.Transfers) < len(stored.Transfers) {
		return fault.ErrStaleChain
	}
	return nil
}
