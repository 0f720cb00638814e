// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/ownership"
)

type showTransfer struct {
	Owner     *account.Account  `json:"owner"`
	Name      string            `json:"name"`
	Signature account.Signature `json:"signature"`
}

type showResult struct {
	ID        uuid.UUID       `json:"id"`
	Owner     string          `json:"owner"`
	Health    int64           `json:"health"`
	Damage    int64           `json:"damage"`
	Image     asset.Reference `json:"image"`
	Transfers []showTransfer  `json:"transfers"`
}

type ownedResult struct {
	Owner    string      `json:"owner"`
	Monsters []uuid.UUID `json:"monsters"`
}

func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	idString := c.String("id")
	file := c.String("file")

	if ("" == idString) == ("" == file) {
		return ErrSelectOne
	}

	if "" != file {
		x, err := readExported(file)
		if nil != err {
			return err
		}
		err = monster.Validate(x.Monster, m.ledger.Issuer())
		if nil != err {
			fmt.Fprintf(m.w, "%s: %s\n", x.ID, describeInvalid(err))
			return err
		}
		fmt.Fprintf(m.w, "%s: valid\n", x.ID)
		return nil
	}

	id, err := checkID(idString)
	if nil != err {
		return err
	}
	_, err = m.ledger.Get(id)
	if nil != err {
		fmt.Fprintf(m.w, "%s: %s\n", id, describeInvalid(err))
		return err
	}
	fmt.Fprintf(m.w, "%s: valid\n", id)
	return nil
}

func runOwner(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	monster, err := m.ledger.Get(id)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", ownership.Describe(m.identities, ownership.CurrentOwner(monster)))
	return nil
}

func runProvenance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	monster, err := m.ledger.Get(id)
	if nil != err {
		return err
	}

	return printJson(m.w, ownership.History(m.identities, monster))
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	monster, err := m.ledger.Get(id)
	if nil != err {
		return err
	}

	result := showResult{
		ID:        id,
		Owner:     ownership.Describe(m.identities, monster.Owner()),
		Health:    monster.Health,
		Damage:    monster.Damage,
		Image:     monster.Image,
		Transfers: make([]showTransfer, len(monster.Transfers)),
	}
	for i, t := range monster.Transfers {
		result.Transfers[i] = showTransfer{
			Owner:     t.Owner,
			Name:      ownership.Describe(m.identities, t.Owner),
			Signature: t.Signature,
		}
	}
	return printJson(m.w, result)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := resolveAccount(m.identities, c.String("owner"))
	if nil != err {
		return err
	}

	ids, err := m.ledger.Owned(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, ownedResult{
		Owner:    ownership.Describe(m.identities, owner),
		Monsters: ids,
	})
}

func runIdentities(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := make(map[string]*account.Account)
	for _, name := range m.identities.Names() {
		a, err := m.identities.Lookup(name)
		if nil != err {
			return err
		}
		result[name] = a
	}
	return printJson(m.w, result)
}

func runFingerprint(c *cli.Context) error {

	file := c.String("file")
	if "" == file {
		return ErrNameRequired
	}

	fingerprint, err := asset.FingerprintFile(file)
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n", fingerprint)
	return nil
}

func readExported(file string) (*exported, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	x := &exported{}
	err = json.Unmarshal(data, x)
	if nil != err {
		return nil, err
	}
	return x, nil
}
