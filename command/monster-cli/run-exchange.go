// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/ownership"
)

func runExport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	monster, err := m.ledger.Get(id)
	if nil != err {
		return err
	}

	x := exported{
		ID:      id,
		Monster: monster,
	}

	output := c.String("output")
	if "" == output {
		return printJson(m.w, x)
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	err = printJson(f, x)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}

func runImport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file := c.String("file")
	if "" == file {
		return ErrNameRequired
	}

	x, err := readExported(file)
	if nil != err {
		return err
	}

	err = m.ledger.Import(x.ID, x.Monster)
	if nil != err {
		return err
	}

	m.log.Infof("imported: %s  from: %s", x.ID, file)
	return printJson(m.w, transferResult{
		ID:        x.ID,
		Owner:     ownership.Describe(m.identities, x.Monster.Owner()),
		Transfers: len(x.Monster.Transfers),
	})
}
