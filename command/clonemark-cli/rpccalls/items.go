// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/rpc/items"
)

// MintData - the parameters for a mint request
type MintData struct {
	Caller     account.Account
	Holder     account.Account
	UnitPrice  uint64
	CloneLimit uint64
	URI        string
}

// Mint - create a root item
func (c *Client) Mint(data *MintData) (*items.MintReply, error) {
	arguments := items.MintArguments{
		Caller:     data.Caller,
		Holder:     data.Holder,
		UnitPrice:  data.UnitPrice,
		CloneLimit: data.CloneLimit,
		URI:        data.URI,
	}
	reply := &items.MintReply{}
	if err := c.call("Items.Mint", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// CloneData - the parameters for a clone request
type CloneData struct {
	Caller    account.Account
	Recipient account.Account
	RootId    uint64
	Count     uint64
	Payment   uint64
}

// Clone - replicate a root item
func (c *Client) Clone(data *CloneData) (*items.CloneReply, error) {
	arguments := items.CloneArguments{
		Caller:    data.Caller,
		Recipient: data.Recipient,
		RootId:    data.RootId,
		Count:     data.Count,
		Payment:   data.Payment,
	}
	reply := &items.CloneReply{}
	if err := c.call("Items.Clone", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Retire - remove an item
func (c *Client) Retire(caller account.Account, id uint64) (*items.RetireReply, error) {
	arguments := items.RetireArguments{
		Caller: caller,
		Id:     id,
	}
	reply := &items.RetireReply{}
	if err := c.call("Items.Retire", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetItem - one item with holder and URI
func (c *Client) GetItem(id uint64) (*items.GetReply, error) {
	reply := &items.GetReply{}
	if err := c.call("Items.Get", items.GetArguments{Id: id}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Latest - highest id issued
func (c *Client) Latest() (*items.LatestReply, error) {
	reply := &items.LatestReply{}
	if err := c.call("Items.Latest", items.LatestArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
