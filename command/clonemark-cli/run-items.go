// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/command/clonemark-cli/rpccalls"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	data, err := mintData(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "holder: %s\n", data.Holder)
		fmt.Fprintf(m.e, "price: %d\n", data.UnitPrice)
		fmt.Fprintf(m.e, "limit: %d\n", data.CloneLimit)
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// validate the mint flags
func mintData(c *cli.Context, m *metadata) (*rpccalls.MintData, error) {
	if err := requireIdentity(m); nil != err {
		return nil, err
	}

	holder, err := account.FromBase58(c.String("holder"))
	if nil != err {
		return nil, fmt.Errorf("holder: %q  error: %s", c.String("holder"), err)
	}
	price, err := parsePrice(c.String("price"))
	if nil != err {
		return nil, err
	}

	return &rpccalls.MintData{
		Caller:     m.identity,
		Holder:     holder,
		UnitPrice:  price,
		CloneLimit: c.Uint64("limit"),
		URI:        c.String("uri"),
	}, nil
}

func runClone(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if err := requireIdentity(m); nil != err {
		return err
	}

	rootId := c.Uint64("root")
	if 0 == rootId {
		return ErrMissingId
	}
	recipient, err := accountOrIdentity(c.String("recipient"), m)
	if nil != err {
		return err
	}
	paid, err := parseAmount(c.String("payment"))
	if nil != err {
		return err
	}

	data := &rpccalls.CloneData{
		Caller:    m.identity,
		Recipient: recipient,
		RootId:    rootId,
		Count:     c.Uint64("count"),
		Payment:   paid,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "root: %d\n", rootId)
		fmt.Fprintf(m.e, "count: %d\n", data.Count)
		fmt.Fprintf(m.e, "payment: %s\n", formatAmount(paid))
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Clone(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRetire(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if err := requireIdentity(m); nil != err {
		return err
	}

	id := c.Uint64("id")
	if 0 == id {
		return ErrMissingId
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Retire(m.identity, id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runItem(c *cli.Context) error {

	id := c.Uint64("id")
	if 0 == id {
		return ErrMissingId
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetItem(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runLatest(c *cli.Context) error {

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Latest()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
