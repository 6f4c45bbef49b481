// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

func runSetFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if err := requireIdentity(m); nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetFeePercentage(m.identity, c.Uint64("percentage"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if err := requireIdentity(m); nil != err {
		return err
	}

	enabled, err := strconv.ParseBool(c.String("enabled"))
	if nil != err {
		return ErrInvalidBoolean
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetMintEnabled(m.identity, enabled)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if err := requireIdentity(m); nil != err {
		return err
	}

	id := c.Uint64("id")
	if 0 == id {
		return ErrMissingId
	}
	price, err := parsePrice(c.String("price"))
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetPrice(m.identity, id, price)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSetURI(c *cli.Context) error {

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

	response, err := client.SetMetadataURI(m.identity, id, c.String("uri"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSettings(c *cli.Context) error {

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Settings()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
