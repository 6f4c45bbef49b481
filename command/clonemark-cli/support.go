// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/command/clonemark-cli/rpccalls"
	"github.com/bitmark-inc/clonemarkd/payment"
)

// number of decimal places in a whole unit
const scaleDigits = 15

// parse a decimal amount of whole units into base units
//
// "1.5" is 1.5 × ScalingFactor, a plain integer is whole units
func parseAmount(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, ErrInvalidAmount
	}

	whole, fraction := s, ""
	if n := strings.IndexByte(s, '.'); n >= 0 {
		whole, fraction = s[:n], s[n+1:]
	}
	if "" == whole {
		whole = "0"
	}
	if len(fraction) > scaleDigits {
		return 0, ErrInvalidAmount
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if nil != err {
		return 0, ErrInvalidAmount
	}

	f := uint64(0)
	if "" != fraction {
		f, err = strconv.ParseUint(fraction+strings.Repeat("0", scaleDigits-len(fraction)), 10, 64)
		if nil != err {
			return 0, ErrInvalidAmount
		}
	}

	hi, lo := bits.Mul64(w, payment.ScalingFactor)
	if 0 != hi {
		return 0, ErrInvalidAmount
	}
	total, carry := bits.Add64(lo, f, 0)
	if 0 != carry {
		return 0, ErrInvalidAmount
	}
	return total, nil
}

// parse a unit price
//
// prices are whole price units, the daemon applies ScalingFactor
func parsePrice(s string) (uint64, error) {
	price, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

// format base units as a decimal amount of whole units
func formatAmount(amount uint64) string {
	whole := amount / payment.ScalingFactor
	fraction := amount % payment.ScalingFactor
	if 0 == fraction {
		return strconv.FormatUint(whole, 10)
	}
	f := strconv.FormatUint(fraction, 10)
	f = strings.Repeat("0", scaleDigits-len(f)) + f
	return strconv.FormatUint(whole, 10) + "." + strings.TrimRight(f, "0")
}

// an explicit base58 account or the default identity
func accountOrIdentity(s string, m *metadata) (account.Account, error) {
	if "" == s {
		if m.identity.IsZero() {
			return account.Account{}, ErrMissingIdentity
		}
		return m.identity, nil
	}
	return account.FromBase58(s)
}

// the caller must be set for any state change
func requireIdentity(m *metadata) error {
	if m.identity.IsZero() {
		return ErrMissingIdentity
	}
	return nil
}

// common start of each command
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}
