// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/ownership"
)

type issueResult struct {
	ID     uuid.UUID       `json:"id"`
	Owner  string          `json:"owner"`
	Health int64           `json:"health"`
	Damage int64           `json:"damage"`
	Image  asset.Reference `json:"image"`
}

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := resolveAccount(m.identities, c.String("owner"))
	if nil != err {
		return err
	}

	image, err := asset.NewReference(c.String("image"))
	if nil != err {
		return err
	}

	issuer, err := m.keys.Get(c.String("issuer-key"))
	if nil != err {
		return fmt.Errorf("issuer key: %q error: %s", c.String("issuer-key"), err)
	}

	health, damage, err := m.config.Stats.Roll(nil)
	if nil != err {
		return err
	}
	if c.IsSet("health") {
		health = c.Int64("health")
	}
	if c.IsSet("damage") {
		damage = c.Int64("damage")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "health: %d  damage: %d\n", health, damage)
	}

	id, monster, err := m.ledger.Issue(issuer, owner, health, damage, image)
	if nil != err {
		return err
	}

	return printJson(m.w, issueResult{
		ID:     id,
		Owner:  ownership.Describe(m.identities, monster.Owner()),
		Health: monster.Health,
		Damage: monster.Damage,
		Image:  monster.Image,
	})
}
