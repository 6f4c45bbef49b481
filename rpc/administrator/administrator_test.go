// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package administrator_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/rpc/administrator"
	"github.com/bitmark-inc/clonemarkd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func TestAdminSetters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := administrator.New(logger.New(fixtures.LogCategory), r)

	after := admin.Snapshot{FeePercentage: 25, MintEnabled: false}

	r.EXPECT().SetFeePercentage(fixtures.Administrator, uint64(25)).Return(nil).Times(1)
	r.EXPECT().SetMintEnabled(fixtures.Administrator, false).Return(nil).Times(1)
	r.EXPECT().SetPrice(fixtures.Administrator, uint64(3), uint64(7)).Return(nil).Times(1)
	r.EXPECT().SetMetadataURI(fixtures.Administrator, uint64(3), "ipfs://new").Return(nil).Times(1)
	r.EXPECT().Settings().Return(after).Times(4)

	var reply administrator.Reply
	err := a.SetFeePercentage(&administrator.SetFeePercentageArguments{Caller: fixtures.Administrator, Percentage: 25}, &reply)
	assert.Nil(t, err, "wrong set fee")
	assert.Equal(t, after, reply.Settings, "wrong settings")

	err = a.SetMintEnabled(&administrator.SetMintEnabledArguments{Caller: fixtures.Administrator, Enabled: false}, &reply)
	assert.Nil(t, err, "wrong set mint")

	err = a.SetPrice(&administrator.SetPriceArguments{Caller: fixtures.Administrator, Id: 3, Price: 7}, &reply)
	assert.Nil(t, err, "wrong set price")

	err = a.SetMetadataURI(&administrator.SetMetadataURIArguments{Caller: fixtures.Administrator, Id: 3, URI: "ipfs://new"}, &reply)
	assert.Nil(t, err, "wrong set URI")
}

func TestAdminErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := administrator.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().SetFeePercentage(fixtures.Outsider, uint64(5)).Return(fault.Unauthorized).Times(1)
	r.EXPECT().SetFeePercentage(fixtures.Administrator, uint64(101)).Return(fault.InvalidRange).Times(1)
	r.EXPECT().SetPrice(fixtures.Administrator, uint64(9), uint64(1)).Return(fault.NotFound).Times(1)

	var reply administrator.Reply
	err := a.SetFeePercentage(&administrator.SetFeePercentageArguments{Caller: fixtures.Outsider, Percentage: 5}, &reply)
	assert.Equal(t, fault.Unauthorized, err, "wrong error")

	err = a.SetFeePercentage(&administrator.SetFeePercentageArguments{Caller: fixtures.Administrator, Percentage: 101}, &reply)
	assert.Equal(t, fault.InvalidRange, err, "wrong error")

	err = a.SetPrice(&administrator.SetPriceArguments{Caller: fixtures.Administrator, Id: 9, Price: 1}, &reply)
	assert.Equal(t, fault.NotFound, err, "wrong error")

	err = a.SetMintEnabled(&administrator.SetMintEnabledArguments{Enabled: true}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestAdminSettings(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := administrator.New(logger.New(fixtures.LogCategory), r)

	r.EXPECT().Settings().Return(admin.Snapshot{FeePercentage: 10, MintEnabled: true}).Times(1)

	var reply administrator.Reply
	err := a.Settings(&administrator.SettingsArguments{}, &reply)
	assert.Nil(t, err, "wrong settings")
	assert.Equal(t, uint64(10), reply.Settings.FeePercentage, "wrong fee")
	assert.True(t, reply.Settings.MintEnabled, "wrong mint flag")
}

func TestPercentageJSON(t *testing.T) {
	var arguments administrator.SetFeePercentageArguments
	err := json.Unmarshal([]byte(`{"caller":"`+fixtures.Administrator.String()+`","percentage":"15"}`), &arguments)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, uint64(15), arguments.Percentage, "wrong percentage")
	assert.Equal(t, fixtures.Administrator, arguments.Caller, "wrong caller")

	buffer, err := json.Marshal(administrator.Reply{Settings: admin.Snapshot{FeePercentage: 15}})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"settings":{"feePercentage":"15","mintEnabled":false}}`, string(buffer), "wrong reply")
}
