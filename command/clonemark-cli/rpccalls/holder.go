// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/rpc/holder"
)

// HolderItems - a page of ids held by an account
func (c *Client) HolderItems(a account.Account, start uint64, count int) (*holder.ItemsReply, error) {
	arguments := holder.ItemsArguments{
		Holder: a,
		Start:  start,
		Count:  count,
	}
	reply := &holder.ItemsReply{}
	if err := c.call("Holder.Items", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - credited payments of an account
func (c *Client) Balance(a account.Account) (*holder.BalanceReply, error) {
	reply := &holder.BalanceReply{}
	if err := c.call("Holder.Balance", holder.BalanceArguments{Account: a}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
