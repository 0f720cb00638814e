// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/monsterchain/configuration"
	"github.com/bitmark-inc/monsterchain/ledger"
	"github.com/bitmark-inc/monsterchain/ownership"
	"github.com/bitmark-inc/monsterchain/storage"
	"github.com/bitmark-inc/monsterchain/util"
)

type metadata struct {
	config     *configuration.Configuration
	ledger     *ledger.Ledger
	identities *ownership.Registry
	keys       *configuration.KeyStore
	log        *logger.L
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "monster-cli"
	app.Usage = "issue and transfer monsters"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "monsters.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a named key pair and add it to the identities",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
				cli.StringFlag{
					Name:  "algorithm, a",
					Value: "ed25519",
					Usage: " key `ALGORITHM` [ed25519|secp256k1]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "issue",
			Usage:     "issue a new monster",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*identity name or account of the first owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "image, i",
					Value: "",
					Usage: " image reference `STRING`",
				},
				cli.Int64Flag{
					Name:  "health",
					Usage: " fixed health `NUMBER` [default: random]",
				},
				cli.Int64Flag{
					Name:  "damage",
					Usage: " fixed damage `NUMBER` [default: random]",
				},
				cli.StringFlag{
					Name:  "issuer-key, k",
					Value: "issuer",
					Usage: " name of the issuer's key `NAME`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a monster to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "*monster `ID`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*key name of the current owner `NAME`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the monster `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "validate",
			Usage:     "validate the transfer chain of a monster",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, t",
					Value: "",
					Usage: "+stored monster `ID`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+exported monster `FILE`",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "owner",
			Usage:     "display the current owner of a monster",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runOwner,
		},
		{
			Name:      "provenance",
			Usage:     "list every owner of a monster",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runProvenance,
		},
		{
			Name:      "show",
			Usage:     "display a monster",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runShow,
		},
		{
			Name:      "owned",
			Usage:     "list monsters owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*identity name or account `ACCOUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "export",
			Usage:     "write a monster as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " output `FILE` [default: stdout]",
				},
			},
			Action: runExport,
		},
		{
			Name:      "import",
			Usage:     "store an exported monster",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*exported monster `FILE`",
				},
			},
			Action: runImport,
		},
		{
			Name:   "identities",
			Usage:  "list identity names and accounts",
			Action: runIdentities,
		},
		{
			Name:   "watch",
			Usage:  "reload the identities file on change until interrupted",
			Action: runWatch,
		},
		{
			Name:      "fingerprint",
			Usage:     "fingerprint an image file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data to fingerprint",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:  "version",
			Usage: "display monster-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the ledger
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "fingerprint" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		m, err := open(file, verbose, e, w)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	// close everything opened by Before
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// open the configured logger, identities, keys and ledger
func open(file string, verbose bool, e io.Writer, w io.Writer) (*metadata, error) {

	config, err := configuration.GetConfiguration(file, nil)
	if nil != err {
		return nil, err
	}

	err = logger.Initialise(config.Logging)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			logger.Finalise()
		}
	}()

	log := logger.New("monster-cli")
	log.Infof("configuration: %s", file)

	identities := ownership.NewRegistry()
	if util.IsFile(config.Identities) {
		err = identities.Load(config.Identities)
		if nil != err {
			return nil, err
		}
	}

	keys, err := configuration.OpenKeyStore(config.Keys)
	if nil != err {
		return nil, err
	}

	err = storage.Initialise(config.Database.Name, storage.ReadWrite)
	if nil != err {
		return nil, err
	}

	l, err := ledger.New(config.IssuerAccount(), logger.New("ledger"))
	if nil != err {
		storage.Finalise()
		return nil, err
	}

	ok = true
	return &metadata{
		config:     config,
		ledger:     l,
		identities: identities,
		keys:       keys,
		log:        log,
		verbose:    verbose,
		e:          e,
		w:          w,
	}, nil
}
