// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clonemarkd/account"
)

type metadata struct {
	connect  string
	identity account.Account
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "clonemark-cli"
	app.Usage = "client for the clonemarkd item registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " clonemarkd host/IP and port, `HOST:PORT`",
			EnvVar: "CLONEMARK_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " base58 caller `ACCOUNT`",
			EnvVar: "CLONEMARK_IDENTITY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "mint",
			Usage:     "create a root item (administrators only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*initial holder `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "0",
					Usage: " unit price per clone in price units `PRICE`",
				},
				cli.Uint64Flag{
					Name:  "limit, l",
					Value: 0,
					Usage: " maximum number of clones `COUNT`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "clone",
			Usage:     "pay for and create derived items of a root",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "root, r",
					Value: 0,
					Usage: "*root item `ID`",
				},
				cli.Uint64Flag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of derived items `COUNT`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: "*amount paid `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient, t",
					Value: "",
					Usage: " holder of the new items `ACCOUNT` [default identity]",
				},
			},
			Action: runClone,
		},
		{
			Name:      "retire",
			Usage:     "remove an item (holder or administrator)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
			},
			Action: runRetire,
		},
		{
			Name:      "item",
			Usage:     "display an item with its holder and URI",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
			},
			Action: runItem,
		},
		{
			Name:   "latest",
			Usage:  "display the highest item id issued",
			Action: runLatest,
		},
		{
			Name:      "holder",
			Usage:     "list items held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " holder `ACCOUNT` [default identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first item `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum items to list `COUNT`",
				},
			},
			Action: runHolder,
		},
		{
			Name:      "balance",
			Usage:     "display credited payments of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " `ACCOUNT` [default identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "set-fee",
			Usage:     "set the beneficiary fee percentage (administrators only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "percentage, p",
					Value: 0,
					Usage: "*fee `PERCENT` in 0..100",
				},
			},
			Action: runSetFee,
		},
		{
			Name:      "set-mint",
			Usage:     "enable or disable mint and clone (administrators only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "enabled, e",
					Value: "",
					Usage: "*`BOOL` true or false",
				},
			},
			Action: runSetMint,
		},
		{
			Name:      "set-price",
			Usage:     "change an item's unit price (administrators only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*unit price in price units `PRICE`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "set-uri",
			Usage:     "change an item's metadata URI (administrators only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, d",
					Value: 0,
					Usage: "*item `ID`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`, blank to remove",
				},
			},
			Action: runSetURI,
		},
		{
			Name:   "settings",
			Usage:  "display the fee percentage and mint flag",
			Action: runSettings,
		},
		{
			Name:   "info",
			Usage:  "display clonemarkd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display clonemark-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if s := c.GlobalString("identity"); "" != s {
			a, err := account.FromBase58(s)
			if nil != err {
				return fmt.Errorf("identity: %q  error: %s", s, err)
			}
			m.identity = a
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", m.connect)
			fmt.Fprintf(e, "identity: %s\n", m.identity)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
