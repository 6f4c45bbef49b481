// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/metadata"
	"github.com/bitmark-inc/clonemarkd/metrics"
	"github.com/bitmark-inc/clonemarkd/ownership"
	"github.com/bitmark-inc/clonemarkd/payment"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

const defaultFeePercentage = 10

type testRegistry struct {
	registry.Registry
	ledger  *payment.Ledger
	metrics *metrics.Metrics
}

func setup(t *testing.T) *testRegistry {
	return setupWithSender(t, nil)
}

// a nil sender uses the ledger
func setupWithSender(t *testing.T, sender payment.Sender) *testRegistry {
	fixtures.SetupTestLogger()
	fixtures.SetupTestDatabase(t)

	log := logger.New(fixtures.LogCategory)

	settings, err := admin.NewSettings(log, storage.Pool.Settings, admin.Defaults{
		FeePercentage: defaultFeePercentage,
		MintEnabled:   true,
	})
	if nil != err {
		t.Fatalf("settings error: %s", err)
	}
	gate, err := admin.NewSingleGate(fixtures.Administrator)
	if nil != err {
		t.Fatalf("gate error: %s", err)
	}

	ledger := payment.NewLedger(log, storage.Pool.Balances, storage.Pool.Settings)
	if nil == sender {
		sender = ledger
	}
	m := metrics.New()

	r, err := registry.New(log, registry.Dependencies{
		Records:  record.New(log, storage.Pool.Items, storage.Pool.Settings),
		Settings: settings,
		Gate:     gate,
		Holders: ownership.New(log, ownership.Pools{
			Holders:     storage.Pool.Holders,
			HolderList:  storage.Pool.HolderList,
			HolderCount: storage.Pool.HolderCount,
			Settings:    storage.Pool.Settings,
		}),
		Metadata:    metadata.New(log, storage.Pool.Metadata),
		Sender:      sender,
		Balances:    ledger,
		Beneficiary: fixtures.Beneficiary,
		Metrics:     m,
	})
	if nil != err {
		t.Fatalf("registry error: %s", err)
	}

	return &testRegistry{
		Registry: r,
		ledger:   ledger,
		metrics:  m,
	}
}

func teardown() {
	fixtures.TeardownTestDatabase()
	fixtures.TeardownTestLogger()
}

// mint a root as administrator, failing the test on error
func mint(t *testing.T, r *testRegistry, unitPrice uint64, cloneLimit uint64) uint64 {
	id, err := r.Mint(fixtures.Administrator, fixtures.Holder, unitPrice, cloneLimit, "ipfs://root")
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return id
}
