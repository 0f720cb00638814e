// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/monsterchain/background"
)

// WatcherLoggerPrefix - logger channel of the identity file watcher
const WatcherLoggerPrefix = "identity-watcher"

type watcher struct {
	log      *logger.L
	registry *Registry
	filePath string
	fsw      *fsnotify.Watcher
	reloaded chan<- error
}

// Watch - load an identity file and reload it whenever it changes
//
// the directory holding the file is watched, so editors that replace
// the file by rename are seen; a file that fails to load leaves the
// previous identities in place.  If reloaded is not nil the result of
// every reload is sent to it without blocking.
func (r *Registry) Watch(fileName string, reloaded chan<- error) (*background.T, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	err = r.Load(filePath)
	if nil != err {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	err = fsw.Add(filepath.Dir(filePath))
	if nil != err {
		fsw.Close()
		return nil, err
	}

	w := &watcher{
		log:      logger.New(WatcherLoggerPrefix),
		registry: r,
		filePath: filePath,
		fsw:      fsw,
		reloaded: reloaded,
	}

	processes := background.Processes{
		w,
	}
	return background.Start(processes, nil), nil
}

// Run - background process: reload on change until shutdown
func (w *watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer w.fsw.Close()

	log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.fsw.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if !fileChanged(event) {
				continue loop
			}

			err := w.registry.Load(w.filePath)
			if nil != err {
				log.Errorf("reload: %s  error: %s", w.filePath, err)
			} else {
				log.Infof("reloaded: %s  identities: %d", w.filePath, w.registry.Count())
			}
			w.notify(err)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("stopped")
}

// send without blocking; a slow reader only misses results
func (w *watcher) notify(err error) {
	if nil == w.reloaded {
		return
	}
	select {
	case w.reloaded <- err:
	default:
		w.log.Debug("reload channel full, discard result")
	}
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
