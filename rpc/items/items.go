// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package items

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Items - type for the RPC
type Items struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

const (
	MaximumCloneCount = 100
	rateLimitItems    = 200
	rateBurstItems    = 100
)

// New - create the items service
func New(log *logger.L, reg registry.Registry) *Items {
	return &Items{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitItems, rateBurstItems),
		Registry: reg,
	}
}

// Items mint
// ----------

// MintArguments - arguments for RPC
type MintArguments struct {
	Caller     account.Account `json:"caller"`
	Holder     account.Account `json:"holder"`
	UnitPrice  uint64          `json:"unitPrice,string"`
	CloneLimit uint64          `json:"cloneLimit,string"`
	URI        string          `json:"uri"`
}

// MintReply - result of mint RPC
type MintReply struct {
	Id uint64 `json:"id,string"`
}

// Mint - create a root item
func (items *Items) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Caller.IsZero() || arguments.Holder.IsZero() {
		return fault.MissingParameters
	}

	items.Log.Infof("Items.Mint: %+v", arguments)

	id, err := items.Registry.Mint(arguments.Caller, arguments.Holder, arguments.UnitPrice, arguments.CloneLimit, arguments.URI)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// Items clone
// -----------

// CloneArguments - arguments for RPC
type CloneArguments struct {
	Caller    account.Account `json:"caller"`
	Recipient account.Account `json:"recipient"`
	RootId    uint64          `json:"rootId,string"`
	Count     uint64          `json:"count,string"`
	Payment   uint64          `json:"payment,string"`
}

// CloneReply - result of clone RPC
type CloneReply registry.CloneResult

// Clone - replicate a root item
func (items *Items) Clone(arguments *CloneArguments, reply *CloneReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(items.Limiter, arguments.Count, MaximumCloneCount); nil != err {
		return err
	}

	if arguments.Caller.IsZero() || arguments.Recipient.IsZero() {
		return fault.MissingParameters
	}

	items.Log.Infof("Items.Clone: %+v", arguments)

	result, err := items.Registry.Clone(arguments.Caller, arguments.Recipient, arguments.RootId, arguments.Count, arguments.Payment)
	if nil != err {
		return err
	}

	*reply = CloneReply(*result)
	return nil
}

// Items retire
// ------------

// RetireArguments - arguments for RPC
type RetireArguments struct {
	Caller account.Account `json:"caller"`
	Id     uint64          `json:"id,string"`
}

// RetireReply - result of retire RPC
type RetireReply struct {
	Id uint64 `json:"id,string"`
}

// Retire - remove an item
func (items *Items) Retire(arguments *RetireArguments, reply *RetireReply) error {

	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Caller.IsZero() {
		return fault.MissingParameters
	}

	items.Log.Infof("Items.Retire: %+v", arguments)

	err := items.Registry.Retire(arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	return nil
}

// Items get
// ---------

// GetArguments - arguments for RPC
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - result of get RPC
//
// an unknown id gives a zero item and no holder
type GetReply struct {
	Id     uint64           `json:"id,string"`
	Item   record.Item      `json:"item"`
	Root   bool             `json:"root"`
	Holder *account.Account `json:"holder,omitempty"`
	URI    string           `json:"uri"`
}

// Get - one item with its holder and URI
func (items *Items) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	item := items.Registry.GetItem(arguments.Id)

	reply.Id = arguments.Id
	reply.Item = item
	reply.Root = item.IsRootOf(arguments.Id)
	reply.URI = items.Registry.URI(arguments.Id)
	if holder := items.Registry.HolderOf(arguments.Id); !holder.IsZero() {
		reply.Holder = &holder
	}
	return nil
}

// Items latest
// ------------

// LatestArguments - empty arguments for RPC
type LatestArguments struct{}

// LatestReply - result of latest RPC
type LatestReply struct {
	Id uint64 `json:"id,string"`
}

// Latest - highest id ever issued
func (items *Items) Latest(_ *LatestArguments, reply *LatestReply) error {

	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	reply.Id = items.Registry.GetLatestId()
	return nil
}
