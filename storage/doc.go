// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = monster handle, 16 byte UUID
// 4. owner        = account bytes: Varint64(algorithm<<4|1) ++ public key
//
// Monsters:
//
//   M ++ id                    - the monster record
//                                data: packed monster (see monster.Pack)
//
// Ownership:
//
//   O ++ owner ++ id           - monsters held by an owner
//                                data: empty
//
// Testing:
//
//   Z ++ key                   - testing data
//
// Writes go through a Transaction so that a record and its index
// entries change together.
package storage
