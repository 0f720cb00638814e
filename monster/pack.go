// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package monster

import (
	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/transferrecord"
	"github.com/bitmark-inc/monsterchain/util"
)

// Packed - the stored form of a monster
type Packed []byte

// version of the packed layout
const packVersion = 1

// smallest possible packed transfer: version, tag and two lengths
const minimumTransferPack = 4

// Pack - convert a monster to its stored form
//
//   Varint64(version)
//   Varint64(length) image
//   Zigzag64(health)
//   Zigzag64(damage)
//   Varint64(count) transfer...
//
// signatures and accounts are kept byte for byte so a loaded monster
// validates exactly as the saved one did
func (m *Monster) Pack() (Packed, error) {
	if err := m.Image.Validate(); nil != err {
		return nil, err
	}

	buffer := util.ToVarint64(packVersion)
	buffer = util.AppendVarint64(buffer, uint64(len(m.Image)))
	buffer = append(buffer, string(m.Image)...)
	buffer = append(buffer, util.ToZigzag64(m.Health)...)
	buffer = append(buffer, util.ToZigzag64(m.Damage)...)
	buffer = util.AppendVarint64(buffer, uint64(len(m.Transfers)))

	for _, t := range m.Transfers {
		if nil == t {
			return nil, fault.ErrMissingOwner
		}
		packed, err := t.Pack()
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, packed...)
	}
	return buffer, nil
}

// Unpack - convert the stored form back to a monster
//
// the monster is not validated; the whole buffer must be consumed
func (record Packed) Unpack() (*Monster, error) {
	version, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.ErrNotMonsterPack
	}
	if packVersion != version {
		return nil, fault.ErrUnsupportedVersion
	}

	imageLength, imageCount := util.BoundedVarint64(record[n:], asset.MaxReferenceLength)
	if 0 == imageCount || len(record) < n+imageCount+imageLength {
		return nil, fault.ErrNotMonsterPack
	}
	n += imageCount
	image := asset.Reference(record[n : n+imageLength])
	n += imageLength
	if err := image.Validate(); nil != err {
		return nil, err
	}

	health, healthCount := util.FromZigzag64(record[n:])
	if 0 == healthCount {
		return nil, fault.ErrNotMonsterPack
	}
	n += healthCount

	damage, damageCount := util.FromZigzag64(record[n:])
	if 0 == damageCount {
		return nil, fault.ErrNotMonsterPack
	}
	n += damageCount

	// each transfer needs some bytes, so the count is bounded by the
	// remaining buffer
	count, countCount := util.BoundedVarint64(record[n:], uint64(len(record)/minimumTransferPack))
	if 0 == countCount {
		return nil, fault.ErrInvalidCount
	}
	n += countCount

	m := &Monster{
		Transfers: make([]*transferrecord.Transfer, 0, count),
		Health:    health,
		Damage:    damage,
		Image:     image,
	}

	for i := 0; i < count; i += 1 {
		t, transferCount, err := transferrecord.Packed(record[n:]).Unpack()
		if nil != err {
			return nil, err
		}
		n += transferCount
		m.Transfers = append(m.Transfers, t)
	}

	if n != len(record) {
		return nil, fault.ErrTrailingData
	}
	return m, nil
}
