// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runHolder(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holder, err := accountOrIdentity(c.String("account"), m)
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.HolderItems(holder, c.Uint64("start"), count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

type balanceReply struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
	Units   uint64 `json:"units,string"`
	Held    uint64 `json:"held"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := accountOrIdentity(c.String("account"), m)
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(a)
	if nil != err {
		return err
	}

	printJson(m.w, balanceReply{
		Account: a.String(),
		Balance: formatAmount(response.Balance),
		Units:   response.Balance,
		Held:    response.Held,
	})
	return nil
}
