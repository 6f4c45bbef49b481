// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/rpc/administrator"
)

// SetFeePercentage - change the beneficiary share
func (c *Client) SetFeePercentage(caller account.Account, percentage uint64) (*administrator.Reply, error) {
	arguments := administrator.SetFeePercentageArguments{
		Caller:     caller,
		Percentage: percentage,
	}
	return c.admin("Admin.SetFeePercentage", arguments)
}

// SetMintEnabled - allow or stop mint and clone
func (c *Client) SetMintEnabled(caller account.Account, enabled bool) (*administrator.Reply, error) {
	arguments := administrator.SetMintEnabledArguments{
		Caller:  caller,
		Enabled: enabled,
	}
	return c.admin("Admin.SetMintEnabled", arguments)
}

// SetPrice - change an item's unit price
func (c *Client) SetPrice(caller account.Account, id uint64, price uint64) (*administrator.Reply, error) {
	arguments := administrator.SetPriceArguments{
		Caller: caller,
		Id:     id,
		Price:  price,
	}
	return c.admin("Admin.SetPrice", arguments)
}

// SetMetadataURI - replace an item's URI
func (c *Client) SetMetadataURI(caller account.Account, id uint64, uri string) (*administrator.Reply, error) {
	arguments := administrator.SetMetadataURIArguments{
		Caller: caller,
		Id:     id,
		URI:    uri,
	}
	return c.admin("Admin.SetMetadataURI", arguments)
}

// Settings - current fee percentage and mint flag
func (c *Client) Settings() (*administrator.Reply, error) {
	return c.admin("Admin.Settings", administrator.SettingsArguments{})
}

func (c *Client) admin(method string, arguments interface{}) (*administrator.Reply, error) {
	reply := &administrator.Reply{}
	if err := c.call(method, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
