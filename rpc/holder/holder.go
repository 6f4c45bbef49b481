// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holder

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Holder - type for the RPC
type Holder struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

const (
	MaximumItemsCount = 100
	rateLimitHolder   = 200
	rateBurstHolder   = 100
)

// New - create the holder service
func New(log *logger.L, reg registry.Registry) *Holder {
	return &Holder{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitHolder, rateBurstHolder),
		Registry: reg,
	}
}

// ItemsArguments - arguments for RPC
type ItemsArguments struct {
	Holder account.Account `json:"holder"`
	Start  uint64          `json:"start,string"` // first id to consider
	Count  int             `json:"count"`        // number of ids
}

// ItemsReply - result of items RPC
type ItemsReply struct {
	Next uint64   `json:"next,string"` // start value for the next call
	Ids  []uint64 `json:"ids"`
}

// Items - ids held by an account, in increasing order
func (holder *Holder) Items(arguments *ItemsArguments, reply *ItemsReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	count := uint64(0)
	if arguments.Count > 0 {
		count = uint64(arguments.Count)
	}
	if err := ratelimit.LimitN(holder.Limiter, count, MaximumItemsCount); nil != err {
		return err
	}

	if arguments.Holder.IsZero() {
		return fault.MissingParameters
	}

	holder.Log.Infof("Holder.Items: %+v", arguments)

	ids, err := holder.Registry.ListHeldBy(arguments.Holder, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Ids = ids

	// if no ids were found the just return Next as zero
	// otherwise the next possible number
	if 0 == len(ids) {
		reply.Next = 0
	} else {
		reply.Next = ids[len(ids)-1] + 1
	}
	return nil
}

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Account account.Account `json:"account"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
	Held    uint64 `json:"held,string"`
}

// Balance - credited payments and number of items held
func (holder *Holder) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(holder.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Account.IsZero() {
		return fault.MissingParameters
	}

	reply.Balance = holder.Registry.BalanceOf(arguments.Account)
	reply.Held = holder.Registry.CountHeldBy(arguments.Account)
	return nil
}
