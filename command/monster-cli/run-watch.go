// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/monsterchain/ownership"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return watchIdentities(m.identities, m.config.Identities, m.w, ch)
}

// report identity file reloads until a signal arrives
func watchIdentities(identities *ownership.Registry, fileName string, w io.Writer, signals <-chan os.Signal) error {

	reloaded := make(chan error, 10)
	t, err := identities.Watch(fileName, reloaded)
	if nil != err {
		return err
	}
	defer t.Stop()

	fmt.Fprintf(w, "watching: %s  identities: %d\n", fileName, identities.Count())

	for {
		select {
		case err := <-reloaded:
			if nil != err {
				fmt.Fprintf(w, "reload failed: %s\n", err)
				continue
			}
			fmt.Fprintf(w, "reloaded: %s  identities: %d\n", fileName, identities.Count())

		case sig := <-signals:
			fmt.Fprintf(w, "received signal: %v\n", sig)
			return nil
		}
	}
}
