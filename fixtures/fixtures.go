// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/monsterchain/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// IssuerPrivateKey - fixed ed25519 issuer: [seed][public key]
var IssuerPrivateKey = []byte{
	0xf3, 0xf7, 0xa1, 0xfc, 0x33, 0x10, 0x71, 0xc2,
	0xb1, 0xcb, 0xbe, 0x4f, 0x3a, 0xee, 0x23, 0x5a,
	0xae, 0xcc, 0xd8, 0x5d, 0x2a, 0x80, 0x4c, 0x44,
	0xb5, 0xc6, 0x03, 0xb4, 0xca, 0x4d, 0x9e, 0xc0,
	0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
	0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0x3b, 0x34,
	0x00, 0xe2, 0x72, 0x9f, 0x65, 0x61, 0x16, 0xdd,
	0x7b, 0x01, 0x8d, 0xf3, 0x46, 0x98, 0xbd, 0xc2,
}

// Issuer - the issuer key
func Issuer() *account.PrivateKey {
	return &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			PrivateKey: IssuerPrivateKey,
		},
	}
}

// Key - a deterministic ed25519 key for a seed byte
func Key(seed byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(account.ED25519, bytes.NewReader(bytes.Repeat([]byte{seed}, 32)))
	if nil != err {
		panic(fmt.Sprintf("fixture key: %d  error: %s", seed, err))
	}
	return key
}

// SetupTestLogger - start a critical-only logger in ./testing
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
