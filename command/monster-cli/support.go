// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/ownership"
)

// common errors - keep in alphabetic order
const (
	ErrAlgorithm      = fault.InvalidError("algorithm must be ed25519 or secp256k1")
	ErrIDRequired     = fault.InvalidError("monster id is required")
	ErrNameRequired   = fault.InvalidError("name is required")
	ErrOwnerRequired  = fault.InvalidError("owner is required")
	ErrSelectOne      = fault.InvalidError("select exactly one of id or file")
	ErrSignerRequired = fault.InvalidError("key name of the signer is required")
)

var idFlag = cli.StringFlag{
	Name:  "id, t",
	Value: "",
	Usage: "*monster `ID`",
}

// exported form of a stored monster
type exported struct {
	ID      uuid.UUID        `json:"id"`
	Monster *monster.Monster `json:"monster"`
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkID(s string) (uuid.UUID, error) {
	if "" == s {
		return uuid.Nil, ErrIDRequired
	}
	return uuid.Parse(s)
}

func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return "", ErrNameRequired
	}
	return name, nil
}

func checkAlgorithm(s string) (int, error) {
	switch strings.ToLower(s) {
	case "ed25519", "":
		return account.ED25519, nil
	case "secp256k1":
		return account.SECP256K1, nil
	default:
		return 0, ErrAlgorithm
	}
}

// an identity name, falling back to a base58 account
func resolveAccount(identities *ownership.Registry, s string) (*account.Account, error) {
	if "" == s {
		return nil, ErrOwnerRequired
	}
	if a, err := identities.Lookup(s); nil == err {
		return a, nil
	}
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%q is neither an identity nor an account: %s", s, err)
	}
	return a, nil
}

// describe a chain validation failure for display
func describeInvalid(err error) string {
	if ce, ok := err.(*fault.ChainError); ok {
		return fmt.Sprintf("invalid at transfer %d: %s", ce.Index, ce.Reason)
	}
	return fmt.Sprintf("invalid: %s", err)
}
