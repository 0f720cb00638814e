// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// monster-check - validate every monster in a ledger database
//
// each stored transfer chain is re-verified from its issuance and the
// owner index is checked against the tip of each chain.  Exits with a
// non-zero status if any record fails.
package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/configuration"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/ledger"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type tip struct {
	id    uuid.UUID
	owner *account.Account
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	configurationFile := options["config-file"][0]
	config, err := configuration.GetConfiguration(configurationFile, nil)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(config.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("monster-check")
	log.Infof("configuration: %s", configurationFile)

	// start of main processing
	err = storage.Initialise(config.Database.Name, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	l, err := ledger.New(config.IssuerAccount(), logger.New("ledger"))
	if nil != err {
		exitwithstatus.Message("%s: ledger setup failed with error: %s", program, err)
	}

	total := 0
	invalid := 0
	tips := []tip{}

	err = l.Scan(func(id uuid.UUID, m *monster.Monster, err error) error {
		total += 1
		if nil != err {
			invalid += 1
			if ce, ok := err.(*fault.ChainError); ok {
				fmt.Printf("%s: invalid at transfer %d: %s\n", id, ce.Index, ce.Reason)
			} else {
				fmt.Printf("%s: invalid: %s\n", id, err)
			}
			return nil
		}
		if verbose {
			fmt.Printf("%s: valid  transfers: %d  owner: %s\n", id, len(m.Transfers), m.Owner())
		}
		tips = append(tips, tip{id: id, owner: m.Owner()})
		return nil
	})
	if nil != err {
		exitwithstatus.Message("%s: scan failed with error: %s", program, err)
	}

	unindexed := 0
	for _, t := range tips {
		if !l.IsOwned(t.owner, t.id) {
			unindexed += 1
			fmt.Printf("%s: owner index missing for: %s\n", t.id, t.owner)
		}
	}

	log.Infof("checked: %d  invalid: %d  unindexed: %d", total, invalid, unindexed)

	if !quiet {
		fmt.Printf("checked: %d  invalid: %d  unindexed: %d\n", total, invalid, unindexed)
	}

	if invalid > 0 || unindexed > 0 {
		exitwithstatus.Message("%s: database has errors", program)
	}
}
