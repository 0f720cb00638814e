// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - references to the displayable resource of a monster
//
// the reference is an opaque handle that is stored and returned but
// never interpreted; a fingerprint can pin a reference to the
// content it held when the monster was issued
package asset
