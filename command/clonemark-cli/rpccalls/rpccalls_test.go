// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/command/clonemark-cli/rpccalls"
	"github.com/bitmark-inc/clonemarkd/counter"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/rpc/certificate"
	"github.com/bitmark-inc/clonemarkd/rpc/listeners"
	"github.com/bitmark-inc/clonemarkd/rpc/mocks"
	"github.com/bitmark-inc/clonemarkd/rpc/server"
	"github.com/bitmark-inc/logger"
)

// start a TLS listener in front of a mock registry
func setup(t *testing.T) (*mocks.MockRegistry, *rpccalls.Client, *bytes.Buffer, func()) {
	fixtures.SetupTestLogger()
	log := logger.New(fixtures.LogCategory)

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)

	dir := t.TempDir()
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	if err := certificate.MakeSelfSigned("test", cer, key, false, nil); nil != err {
		t.Fatalf("make certificate error: %s", err)
	}
	tlsConfig, fingerprint, err := certificate.Load(log, "test", cer, key)
	if nil != err {
		t.Fatalf("load certificate error: %s", err)
	}

	count := counter.Counter(0)
	l, err := listeners.NewRPC(
		&listeners.RPCConfiguration{MaximumConnections: 2, Listen: []string{"127.0.0.1:0"}},
		log,
		&count,
		server.Create(log, "0.1", &count, r),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		t.Fatalf("listener error: %s", err)
	}
	if err := l.Serve(); nil != err {
		t.Fatalf("serve error: %s", err)
	}

	trace := &bytes.Buffer{}
	client, err := rpccalls.NewClient(l.Addrs()[0].String(), true, trace)
	if nil != err {
		l.Stop()
		t.Fatalf("connect error: %s", err)
	}

	return r, client, trace, func() {
		client.Close()
		l.Stop()
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestMintAndClone(t *testing.T) {
	r, client, trace, teardown := setup(t)
	defer teardown()

	gomock.InOrder(
		r.EXPECT().Mint(fixtures.Administrator, fixtures.Holder, uint64(5), uint64(2), "ipfs://a").Return(uint64(1), nil),
		r.EXPECT().Clone(fixtures.Outsider, fixtures.Recipient, uint64(1), uint64(1), uint64(5)).Return(&registry.CloneResult{
			Ids:       []uint64{2},
			TotalCost: 5,
			OwnerFee:  0,
			HolderFee: 5,
		}, nil),
	)

	minted, err := client.Mint(&rpccalls.MintData{
		Caller:     fixtures.Administrator,
		Holder:     fixtures.Holder,
		UnitPrice:  5,
		CloneLimit: 2,
		URI:        "ipfs://a",
	})
	assert.Nil(t, err, "wrong mint")
	assert.Equal(t, uint64(1), minted.Id, "wrong id")

	cloned, err := client.Clone(&rpccalls.CloneData{
		Caller:    fixtures.Outsider,
		Recipient: fixtures.Recipient,
		RootId:    1,
		Count:     1,
		Payment:   5,
	})
	assert.Nil(t, err, "wrong clone")
	assert.Equal(t, []uint64{2}, cloned.Ids, "wrong ids")
	assert.Equal(t, uint64(5), cloned.HolderFee, "wrong holder fee")

	assert.Contains(t, trace.String(), "Items.Clone Reply", "missing trace")
}

func TestErrorsAreReturned(t *testing.T) {
	r, client, _, teardown := setup(t)
	defer teardown()

	r.EXPECT().Retire(fixtures.Outsider, uint64(3)).Return(fault.Unauthorized)

	_, err := client.Retire(fixtures.Outsider, 3)
	assert.NotNil(t, err, "expected error")
	assert.Equal(t, fault.Unauthorized.Error(), err.Error(), "wrong error")
}

func TestQueries(t *testing.T) {
	r, client, _, teardown := setup(t)
	defer teardown()

	r.EXPECT().GetItem(uint64(1)).Return(record.Item{UnitPrice: 5, CloneLimit: 2, OriginId: 1})
	r.EXPECT().URI(uint64(1)).Return("ipfs://a")
	r.EXPECT().HolderOf(uint64(1)).Return(fixtures.Holder)
	r.EXPECT().GetLatestId().Return(uint64(1)).Times(2)
	r.EXPECT().ListHeldBy(fixtures.Holder, uint64(0), 10).Return([]uint64{1}, nil)
	r.EXPECT().BalanceOf(fixtures.Holder).Return(uint64(5))
	r.EXPECT().CountHeldBy(fixtures.Holder).Return(uint64(1))
	r.EXPECT().Settings().Return(admin.Snapshot{FeePercentage: 10, MintEnabled: true}).Times(2)

	item, err := client.GetItem(1)
	assert.Nil(t, err, "wrong get")
	assert.True(t, item.Root, "not a root")
	if assert.NotNil(t, item.Holder, "missing holder") {
		assert.Equal(t, fixtures.Holder, *item.Holder, "wrong holder")
	}

	latest, err := client.Latest()
	assert.Nil(t, err, "wrong latest")
	assert.Equal(t, uint64(1), latest.Id, "wrong latest id")

	held, err := client.HolderItems(fixtures.Holder, 0, 10)
	assert.Nil(t, err, "wrong holder items")
	assert.Equal(t, []uint64{1}, held.Ids, "wrong held ids")
	assert.Equal(t, uint64(2), held.Next, "wrong next")

	balance, err := client.Balance(fixtures.Holder)
	assert.Nil(t, err, "wrong balance")
	assert.Equal(t, uint64(5), balance.Balance, "wrong amount")

	settings, err := client.Settings()
	assert.Nil(t, err, "wrong settings")
	assert.Equal(t, uint64(10), settings.Settings.FeePercentage, "wrong fee")

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong info")
	assert.Equal(t, "0.1", info.Version, "wrong version")
}
