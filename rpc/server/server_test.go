// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/counter"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/rpc/administrator"
	"github.com/bitmark-inc/clonemarkd/rpc/holder"
	"github.com/bitmark-inc/clonemarkd/rpc/items"
	"github.com/bitmark-inc/clonemarkd/rpc/mocks"
	"github.com/bitmark-inc/clonemarkd/rpc/node"
	"github.com/bitmark-inc/clonemarkd/rpc/server"
	"github.com/bitmark-inc/logger"
)

// following tests make sure the proper services are registered
// each call goes through the JSON codec used by the listeners

func setup(t *testing.T) (*gomock.Controller, *mocks.MockRegistry, *rpc.Client, func()) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, r)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	go func() {
		conn, err := l.Accept()
		if nil != err {
			return
		}
		s.ServeCodec(jsonrpc.NewServerCodec(conn))
	}()

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	return ctl, r, client, func() {
		_ = client.Close()
		_ = l.Close()
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestItemsLatest(t *testing.T) {
	_, r, client, teardown := setup(t)
	defer teardown()

	r.EXPECT().GetLatestId().Return(uint64(8)).Times(1)

	var reply items.LatestReply
	err := client.Call("Items.Latest", &items.LatestArguments{}, &reply)
	assert.Nil(t, err, "wrong Items.Latest")
	assert.Equal(t, uint64(8), reply.Id, "wrong id")
}

func TestItemsClone(t *testing.T) {
	_, _, client, teardown := setup(t)
	defer teardown()

	arg := items.CloneArguments{
		Caller:    fixtures.Outsider,
		Recipient: fixtures.Recipient,
		RootId:    1,
		Count:     0,
	}
	var reply items.CloneReply
	err := client.Call("Items.Clone", &arg, &reply)
	assert.NotNil(t, err, "wrong Items.Clone")
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong reply")
}

func TestAdminSettings(t *testing.T) {
	_, r, client, teardown := setup(t)
	defer teardown()

	r.EXPECT().Settings().Return(admin.Snapshot{FeePercentage: 10, MintEnabled: true}).Times(1)

	var reply administrator.Reply
	err := client.Call("Admin.Settings", &administrator.SettingsArguments{}, &reply)
	assert.Nil(t, err, "wrong Admin.Settings")
	assert.Equal(t, uint64(10), reply.Settings.FeePercentage, "wrong fee")
}

func TestAdminSetFeePercentage(t *testing.T) {
	_, r, client, teardown := setup(t)
	defer teardown()

	r.EXPECT().SetFeePercentage(fixtures.Outsider, uint64(50)).Return(fault.Unauthorized).Times(1)

	arg := administrator.SetFeePercentageArguments{
		Caller:     fixtures.Outsider,
		Percentage: 50,
	}
	var reply administrator.Reply
	err := client.Call("Admin.SetFeePercentage", &arg, &reply)
	assert.NotNil(t, err, "wrong Admin.SetFeePercentage")
	assert.Equal(t, fault.Unauthorized.Error(), err.Error(), "wrong reply")
}

func TestHolderItems(t *testing.T) {
	_, _, client, teardown := setup(t)
	defer teardown()

	arg := holder.ItemsArguments{
		Holder: fixtures.Holder,
		Count:  0,
	}
	var reply holder.ItemsReply
	err := client.Call("Holder.Items", &arg, &reply)
	assert.NotNil(t, err, "wrong Holder.Items")
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	_, r, client, teardown := setup(t)
	defer teardown()

	r.EXPECT().GetLatestId().Return(uint64(3)).Times(1)
	r.EXPECT().Settings().Return(admin.Snapshot{}).Times(1)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.LatestId, "wrong latest id")
}
