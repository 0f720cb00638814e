// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/ownership"
)

type transferResult struct {
	ID        uuid.UUID `json:"id"`
	Owner     string    `json:"owner"`
	Transfers int       `json:"transfers"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	from := c.String("from")
	if "" == from {
		return ErrSignerRequired
	}
	signer, err := m.keys.Get(from)
	if nil != err {
		return fmt.Errorf("key: %q error: %s", from, err)
	}

	receiver, err := resolveAccount(m.identities, c.String("receiver"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "from: %s\n", signer.Account())
		fmt.Fprintf(m.e, "to: %s\n", receiver)
	}

	monster, err := m.ledger.Transfer(id, signer, receiver)
	if nil != err {
		return err
	}

	return printJson(m.w, transferResult{
		ID:        id,
		Owner:     ownership.Describe(m.identities, monster.Owner()),
		Transfers: len(monster.Transfers),
	})
}
