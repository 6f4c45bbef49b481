// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/logger"
)

// Watcher - reload a ListGate when its file changes
//
// the directory is watched rather than the file so that editors
// which replace the file on save are followed
type Watcher struct {
	log      *logger.L
	gate     *ListGate
	watcher  *fsnotify.Watcher
	filePath string
	reloaded chan struct{}
}

// NewWatcher - watcher for the gate's administrators file
func NewWatcher(log *logger.L, gate *ListGate) (*Watcher, error) {
	if "" == gate.FileName() {
		return nil, fault.MissingParameters
	}

	filePath, err := filepath.Abs(filepath.Clean(gate.FileName()))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watch: %q  error: %s", filePath, err)
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		gate:     gate,
		watcher:  watcher,
		filePath: filePath,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded - receives after each successful reload, events are
// dropped when nobody is reading
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Close - release the file watch of a watcher that will not be run
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}
			w.log.Debugf("file event: %v", event)

			if eventFileRemove(event) {
				w.log.Warnf("file: %q removed, keeping current administrators", w.filePath)
				continue loop
			}
			if !eventFileChange(event) {
				continue loop
			}
			if err := w.gate.Reload(); nil != err {
				w.log.Errorf("reload error: %s", err)
				continue loop
			}
			w.sendEvent()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *Watcher) sendEvent() {
	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}

func eventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
