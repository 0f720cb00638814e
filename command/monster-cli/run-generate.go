// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/account"
)

type generateResult struct {
	Name    string           `json:"name"`
	Account *account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	algorithm, err := checkAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}

	key, err := account.NewPrivateKey(algorithm, rand.Reader)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "account: %s\n", key.Account())
	}

	err = m.keys.Add(name, key)
	if nil != err {
		return err
	}
	err = m.identities.Add(name, key.Account())
	if nil != err {
		return err
	}

	err = m.keys.Save()
	if nil != err {
		return err
	}
	err = m.identities.WriteFile(m.config.Identities)
	if nil != err {
		return err
	}

	m.log.Infof("generated: %s  account: %s", name, key.Account())

	return printJson(m.w, generateResult{
		Name:    name,
		Account: key.Account(),
	})
}
