// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package monster - a unique asset and its chain of ownership
//
// A monster is created by the issuer signing the first owner's
// account.  Each later transfer is signed by the owner of the
// previous transfer, over that transfer's signature and the next
// owner's account, so a transfer only verifies at the one position
// of the one chain it was made for:
//
//   [0] issuer   signs encode(issue{owner0})
//   [1] owner0   signs encode(link{sig[0], owner1})
//   [2] owner1   signs encode(link{sig[1], owner2})
//
// The current owner is the owner of the last transfer.  Validate walks
// the whole chain from the start and reports the first transfer that
// fails.
package monster
