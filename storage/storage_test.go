// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/storage"
)

func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestDatabase(t)
}

func teardown() {
	fixtures.TeardownTestDatabase()
	fixtures.TeardownTestLogger()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(filepath.Join(t.TempDir(), "other.leveldb"), storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise should fail")
}

func TestReopenKeepsData(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	name := filepath.Join(t.TempDir(), "reopen.leveldb")

	err := storage.Initialise(name, storage.ReadWrite)
	assert.Nil(t, err, "first open")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.PutN(storage.Pool.TestData, []byte("n"), 42)
	assert.Nil(t, trx.Commit(), "commit")
	storage.Finalise()

	err = storage.Initialise(name, storage.ReadOnly)
	assert.Nil(t, err, "read only open")
	defer storage.Finalise()

	n, found := storage.Pool.TestData.GetN([]byte("n"))
	assert.True(t, found, "value should survive reopen")
	assert.Equal(t, uint64(42), n, "wrong value")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin on read only")
	trx.Put(storage.Pool.TestData, []byte("x"), []byte("y"))
	assert.Equal(t, fault.DatabaseIsReadOnly, trx.Commit(), "read only commit")
}

func TestNoDatabase(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "no database")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	for _, k := range []string{"a1", "a2", "a3", "b1", "b2"} {
		trx.Put(storage.Pool.TestData, []byte(k), []byte("v-"+k))
	}
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.TestData.NewFetchCursor().Prefix([]byte("a"))

	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, 2, len(first), "first page")
	assert.Equal(t, []byte("a1"), first[0].Key, "first key")
	assert.Equal(t, []byte("v-a2"), first[1].Value, "second value")

	second, err := cursor.Fetch(2)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, 1, len(second), "second page stays inside the prefix")
	assert.Equal(t, []byte("a3"), second[0].Key, "third key")

	third, err := cursor.Fetch(2)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, 0, len(third), "exhausted")

	seek, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("b")).Fetch(10)
	assert.Nil(t, err, "seek fetch")
	assert.Equal(t, 2, len(seek), "seek to b")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}
