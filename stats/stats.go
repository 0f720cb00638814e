// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stats - the issue policy for monster health and damage
//
// the monster record stores whatever integers it is given; this
// package is how the issuing tools choose them
package stats

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/bitmark-inc/monsterchain/fault"
)

// default inclusive range
const (
	DefaultMinimum = 1
	DefaultMaximum = 10
)

// Policy - inclusive range for rolled values
type Policy struct {
	Minimum int64 `gluamapper:"minimum" json:"minimum"`
	Maximum int64 `gluamapper:"maximum" json:"maximum"`
}

// Default - the 1..10 policy
func Default() Policy {
	return Policy{
		Minimum: DefaultMinimum,
		Maximum: DefaultMaximum,
	}
}

// Validate - the range must not be empty
func (policy Policy) Validate() error {
	if policy.Minimum > policy.Maximum {
		return fault.ErrInvalidStatsRange
	}
	// width must fit an int64
	if policy.Maximum-policy.Minimum < 0 {
		return fault.ErrInvalidStatsRange
	}
	return nil
}

// Contains - true if value is in range
func (policy Policy) Contains(value int64) bool {
	return value >= policy.Minimum && value <= policy.Maximum
}

// Roll - health and damage uniformly within the range
//
// random is normally nil, meaning crypto/rand.Reader
func (policy Policy) Roll(random io.Reader) (health int64, damage int64, err error) {
	if err := policy.Validate(); nil != err {
		return 0, 0, err
	}
	if nil == random {
		random = rand.Reader
	}

	health, err = policy.one(random)
	if nil != err {
		return 0, 0, err
	}
	damage, err = policy.one(random)
	if nil != err {
		return 0, 0, err
	}
	return health, damage, nil
}

func (policy Policy) one(random io.Reader) (int64, error) {
	width := big.NewInt(policy.Maximum - policy.Minimum)
	width.Add(width, big.NewInt(1))

	n, err := rand.Int(random, width)
	if nil != err {
		return 0, err
	}
	return policy.Minimum + n.Int64(), nil
}
