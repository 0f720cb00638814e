// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a set of writes applied together
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionData - Transaction over a single Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start; fails if another transaction is open
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - store a key/value pair in a pool
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - remove a key from a pool
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value, seeing writes pending in this transaction
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// Has - check a key, seeing writes pending in this transaction
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write everything and end the transaction
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything and end the transaction
func (t *TransactionData) Abort() {
	t.access.Abort()
}
