// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/rpc"
	"github.com/bitmark-inc/clonemarkd/rpc/certificate"
	"github.com/bitmark-inc/clonemarkd/rpc/items"
	"github.com/bitmark-inc/clonemarkd/rpc/listeners"
	"github.com/bitmark-inc/clonemarkd/rpc/mocks"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().GetLatestId().Return(uint64(12)).Times(1)

	dir := t.TempDir()
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        filepath.Join(dir, "rpc.crt"),
		PrivateKey:         filepath.Join(dir, "rpc.key"),
	}
	err := certificate.MakeSelfSigned("test", configuration.Certificate, configuration.PrivateKey, false, nil)
	if nil != err {
		t.Fatalf("make certificate error: %s", err)
	}

	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "finalise before initialise")

	err = rpc.Initialise(configuration, "0.1", r)
	assert.Nil(t, err, "wrong initialise")
	assert.Equal(t, fault.AlreadyInitialised, rpc.Initialise(configuration, "0.1", r), "second initialise")

	addrs := rpc.Addrs()
	if !assert.Equal(t, 1, len(addrs), "wrong address count") {
		_ = rpc.Finalise()
		return
	}

	conn, err := tls.Dial("tcp", addrs[0].String(), &tls.Config{InsecureSkipVerify: true})
	if assert.Nil(t, err, "dial error") {
		client := jsonrpc.NewClient(conn)
		var reply items.LatestReply
		err = client.Call("Items.Latest", &items.LatestArguments{}, &reply)
		assert.Nil(t, err, "wrong Items.Latest")
		assert.Equal(t, uint64(12), reply.Id, "wrong id")
		_ = client.Close()
	}

	assert.Nil(t, rpc.Finalise(), "wrong finalise")
	assert.Nil(t, rpc.Addrs(), "addresses after finalise")
}
