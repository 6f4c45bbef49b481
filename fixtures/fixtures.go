// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup: logging, a scratch database
// and a fixed cast of accounts
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// accounts used throughout the tests
var (
	Administrator = mustAccount("administrator")
	Beneficiary   = mustAccount("beneficiary")
	Holder        = mustAccount("holder")
	Recipient     = mustAccount("recipient")
	Outsider      = mustAccount("outsider")
)

func mustAccount(name string) account.Account {
	a, err := account.FromBytes([]byte(name))
	if nil != err {
		panic(err)
	}
	return a
}

// SetupTestLogger - file logger at critical level in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - open an empty database under the test's temporary directory
func SetupTestDatabase(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.leveldb")
	err := storage.Initialise(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestDatabase - close the database
func TeardownTestDatabase() {
	storage.Finalise()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
