// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/ownership"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

func setup(t *testing.T) ownership.Registry {
	fixtures.SetupTestLogger()
	fixtures.SetupTestDatabase(t)
	return ownership.New(logger.New(fixtures.LogCategory), ownership.Pools{
		Holders:     storage.Pool.Holders,
		HolderList:  storage.Pool.HolderList,
		HolderCount: storage.Pool.HolderCount,
		Settings:    storage.Pool.Settings,
	})
}

func teardown() {
	fixtures.TeardownTestDatabase()
	fixtures.TeardownTestLogger()
}

func commit(t *testing.T, f func(storage.Transaction)) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	f(trx)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestAssign(t *testing.T) {
	r := setup(t)
	defer teardown()

	commit(t, func(trx storage.Transaction) {
		assert.Nil(t, r.Assign(trx, 1, fixtures.Holder), "assign 1")
		assert.Nil(t, r.Assign(trx, 2, fixtures.Holder), "assign 2")
		assert.Nil(t, r.Assign(trx, 3, fixtures.Recipient), "assign 3")

		assert.Equal(t, fixtures.Holder, r.HolderOf(trx, 1), "staged holder")
		assert.Equal(t, uint64(2), r.CountHeldBy(trx, fixtures.Holder), "staged count")
	})

	assert.Equal(t, fixtures.Holder, r.HolderOf(nil, 2), "holder of 2")
	assert.Equal(t, fixtures.Recipient, r.HolderOf(nil, 3), "holder of 3")
	assert.True(t, r.HolderOf(nil, 4).IsZero(), "unassigned")
	assert.Equal(t, uint64(2), r.CountHeldBy(nil, fixtures.Holder), "holder count")
	assert.Equal(t, uint64(1), r.CountHeldBy(nil, fixtures.Recipient), "recipient count")
	assert.Equal(t, uint64(0), r.CountHeldBy(nil, fixtures.Outsider), "outsider count")
	assert.Equal(t, uint64(3), r.TotalAssigned(nil), "total")
}

func TestAssignErrors(t *testing.T) {
	r := setup(t)
	defer teardown()

	assert.Equal(t, fault.TransactionNotStarted, r.Assign(nil, 1, fixtures.Holder), "no transaction")

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	assert.Equal(t, fault.IdOutOfRange, r.Assign(trx, 0, fixtures.Holder), "id zero")
	assert.Equal(t, fault.InvalidAccount, r.Assign(trx, 1, account.Account{}), "zero holder")
	assert.Equal(t, fault.NotFound, r.Revoke(trx, 1), "revoke unassigned")
}

func TestReassign(t *testing.T) {
	r := setup(t)
	defer teardown()

	commit(t, func(trx storage.Transaction) {
		assert.Nil(t, r.Assign(trx, 7, fixtures.Holder), "assign")
	})
	commit(t, func(trx storage.Transaction) {
		assert.Nil(t, r.Assign(trx, 7, fixtures.Holder), "same holder again")
		assert.Nil(t, r.Assign(trx, 7, fixtures.Recipient), "move")
	})

	assert.Equal(t, fixtures.Recipient, r.HolderOf(nil, 7), "new holder")
	assert.Equal(t, uint64(0), r.CountHeldBy(nil, fixtures.Holder), "old holder count")
	assert.Equal(t, uint64(1), r.CountHeldBy(nil, fixtures.Recipient), "new holder count")
	assert.Equal(t, uint64(1), r.TotalAssigned(nil), "total unchanged by a move")

	ids, err := r.ListHeldBy(fixtures.Holder, 0, 10)
	assert.Nil(t, err, "list old")
	assert.Equal(t, 0, len(ids), "old holder list")
}

func TestRevoke(t *testing.T) {
	r := setup(t)
	defer teardown()

	commit(t, func(trx storage.Transaction) {
		_ = r.Assign(trx, 1, fixtures.Holder)
		_ = r.Assign(trx, 2, fixtures.Holder)
	})
	commit(t, func(trx storage.Transaction) {
		assert.Nil(t, r.Revoke(trx, 1), "revoke")
	})

	assert.True(t, r.HolderOf(nil, 1).IsZero(), "revoked")
	assert.Equal(t, uint64(1), r.CountHeldBy(nil, fixtures.Holder), "count")
	assert.Equal(t, uint64(1), r.TotalAssigned(nil), "total")

	ids, err := r.ListHeldBy(fixtures.Holder, 0, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, []uint64{2}, ids, "remaining ids")
}

func TestListHeldBy(t *testing.T) {
	r := setup(t)
	defer teardown()

	commit(t, func(trx storage.Transaction) {
		for id := uint64(1); id <= 300; id += 1 {
			holder := fixtures.Holder
			if 0 == id%3 {
				holder = fixtures.Recipient
			}
			_ = r.Assign(trx, id, holder)
		}
	})

	_, err := r.ListHeldBy(account.Account{}, 0, 10)
	assert.Equal(t, fault.InvalidAccount, err, "zero account")

	_, err = r.ListHeldBy(fixtures.Holder, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	// page through, including ids above 255 to check key ordering
	all := []uint64{}
	start := uint64(0)
	for {
		ids, err := r.ListHeldBy(fixtures.Recipient, start, 7)
		assert.Nil(t, err, "list page")
		if 0 == len(ids) {
			break
		}
		all = append(all, ids...)
		start = ids[len(ids)-1] + 1
	}
	assert.Equal(t, 100, len(all), "recipient holds every third")
	for i, id := range all {
		assert.Equal(t, uint64(3*(i+1)), id, "id %d", i)
	}

	ids, err := r.ListHeldBy(fixtures.Holder, 298, 10)
	assert.Nil(t, err, "list tail")
	assert.Equal(t, []uint64{298, 299}, ids, "tail")

	ids, err = r.ListHeldBy(fixtures.Outsider, 0, 10)
	assert.Nil(t, err, "list outsider")
	assert.Equal(t, 0, len(ids), "outsider holds nothing")
}
