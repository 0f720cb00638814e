// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the stored set of monsters
//
// Each monster is kept under a random uuid in the storage "M" pool
// with its current owner indexed in the "O" pool.  Only one mutation
// runs at a time and every record read back is validated against the
// issuer before it is returned.
//
// storage.Initialise must be called before a Ledger is used.
package ledger
