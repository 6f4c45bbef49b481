// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package administrator

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAdmin = 20
	rateBurstAdmin = 10
)

// Admin - type for the RPC
type Admin struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the admin service
func New(log *logger.L, reg registry.Registry) *Admin {
	return &Admin{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Registry: reg,
	}
}

// Reply - every setter returns the settings after the call
type Reply struct {
	Settings admin.Snapshot `json:"settings"`
}

// SetFeePercentageArguments - arguments for RPC
type SetFeePercentageArguments struct {
	Caller     account.Account `json:"caller"`
	Percentage uint64          `json:"percentage,string"`
}

// SetFeePercentage - beneficiary share of clone payments
func (a *Admin) SetFeePercentage(arguments *SetFeePercentageArguments, reply *Reply) error {
	if err := a.begin(arguments, "SetFeePercentage"); nil != err {
		return err
	}
	return a.finish(a.Registry.SetFeePercentage(arguments.Caller, arguments.Percentage), reply)
}

// SetMintEnabledArguments - arguments for RPC
type SetMintEnabledArguments struct {
	Caller  account.Account `json:"caller"`
	Enabled bool            `json:"enabled"`
}

// SetMintEnabled - allow or stop mint and clone
func (a *Admin) SetMintEnabled(arguments *SetMintEnabledArguments, reply *Reply) error {
	if err := a.begin(arguments, "SetMintEnabled"); nil != err {
		return err
	}
	return a.finish(a.Registry.SetMintEnabled(arguments.Caller, arguments.Enabled), reply)
}

// SetPriceArguments - arguments for RPC
type SetPriceArguments struct {
	Caller account.Account `json:"caller"`
	Id     uint64          `json:"id,string"`
	Price  uint64          `json:"price,string"`
}

// SetPrice - change an item's unit price
func (a *Admin) SetPrice(arguments *SetPriceArguments, reply *Reply) error {
	if err := a.begin(arguments, "SetPrice"); nil != err {
		return err
	}
	return a.finish(a.Registry.SetPrice(arguments.Caller, arguments.Id, arguments.Price), reply)
}

// SetMetadataURIArguments - arguments for RPC
type SetMetadataURIArguments struct {
	Caller account.Account `json:"caller"`
	Id     uint64          `json:"id,string"`
	URI    string          `json:"uri"`
}

// SetMetadataURI - replace an item's URI
func (a *Admin) SetMetadataURI(arguments *SetMetadataURIArguments, reply *Reply) error {
	if err := a.begin(arguments, "SetMetadataURI"); nil != err {
		return err
	}
	return a.finish(a.Registry.SetMetadataURI(arguments.Caller, arguments.Id, arguments.URI), reply)
}

// SettingsArguments - empty arguments for RPC
type SettingsArguments struct{}

// Settings - current settings, open to anyone
func (a *Admin) Settings(_ *SettingsArguments, reply *Reply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	reply.Settings = a.Registry.Settings()
	return nil
}

type withCaller interface {
	caller() account.Account
}

func (arguments *SetFeePercentageArguments) caller() account.Account { return arguments.Caller }
func (arguments *SetMintEnabledArguments) caller() account.Account   { return arguments.Caller }
func (arguments *SetPriceArguments) caller() account.Account         { return arguments.Caller }
func (arguments *SetMetadataURIArguments) caller() account.Account   { return arguments.Caller }

func (a *Admin) begin(arguments withCaller, name string) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if arguments.caller().IsZero() {
		return fault.MissingParameters
	}
	a.Log.Infof("Admin.%s: %+v", name, arguments)
	return nil
}

func (a *Admin) finish(err error, reply *Reply) error {
	if nil != err {
		return err
	}
	reply.Settings = a.Registry.Settings()
	return nil
}
