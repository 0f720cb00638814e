// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// ToZigzag64 - convert a signed 64 bit integer to Varint64 using
// zigzag mapping so small negative values stay short
//
//   0 → 0, -1 → 1, 1 → 2, -2 → 3, …
func ToZigzag64(value int64) []byte {
	return ToVarint64(uint64(value<<1) ^ uint64(value>>63))
}

// FromZigzag64 - reverse of ToZigzag64
//
// also return the number of bytes used as second value
// returns 0, 0 if buffer is truncated
func FromZigzag64(buffer []byte) (int64, int) {
	u, n := FromVarint64(buffer)
	if 0 == n {
		return 0, 0
	}
	return int64(u>>1) ^ -int64(u&1), n
}
