// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who owns a monster and what they are called
//
// The owner of a monster is the account of the last transfer of its
// chain.  Names for accounts come from a Directory, which is
// injected by the caller; Registry is an in-memory directory that can
// be loaded from, and kept in step with, a JSON identity file:
//
//   {
//     "Alice": "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
//     "Bob":   "..."
//   }
//
// The owner index in storage maps each owner to the monsters it
// holds:
//
//   O ⧺ owner ⧺ id      - data: empty
package ownership
