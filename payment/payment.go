// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - value transfer to accounts
//
// the ledger credits balances in base payment units:
//
//   B ⧺ account  - balance
//                  data: amount
//   S ⧺ "total-paid"
//                - sum of all balances
//                  data: amount
package payment

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// ScalingFactor - base payment units in one price unit
const ScalingFactor = 1000000000000000

var totalPaidKey = []byte("total-paid")

//go:generate mockgen -destination=../rpc/mocks/sender.go -package=mocks github.com/bitmark-inc/clonemarkd/payment Sender

// Sender - the value transfer primitive
//
// a failed send must leave no staged effect behind
type Sender interface {
	Send(storage.Transaction, account.Account, uint64) error
}

// Balances - read access to credited amounts
type Balances interface {
	BalanceOf(account.Account) uint64
}

// Ledger - a Sender that credits balances in the database
type Ledger struct {
	log      *logger.L
	balances storage.Handle
	settings storage.Handle
}

// NewLedger - create a ledger over the balance and settings pools
func NewLedger(log *logger.L, balances storage.Handle, settings storage.Handle) *Ledger {
	return &Ledger{
		log:      log,
		balances: balances,
		settings: settings,
	}
}

// Send - credit amount to an account
func (l *Ledger) Send(trx storage.Transaction, to account.Account, amount uint64) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if to.IsZero() {
		l.log.Warnf("send: %d to zero account", amount)
		return fault.TransferFailed
	}
	if 0 == amount {
		return nil
	}

	balance, _ := trx.GetN(l.balances, to.Pack())
	total, _ := trx.GetN(l.settings, totalPaidKey)
	if balance+amount < balance || total+amount < total {
		l.log.Warnf("send: %d to: %s  balance: %d  overflows", amount, to, balance)
		return fault.TransferFailed
	}

	trx.PutN(l.balances, to.Pack(), balance+amount)
	trx.PutN(l.settings, totalPaidKey, total+amount)

	l.log.Debugf("send: %d to: %s", amount, to)
	return nil
}

// BalanceOf - committed balance of an account
func (l *Ledger) BalanceOf(a account.Account) uint64 {
	if a.IsZero() {
		return 0
	}
	n, _ := l.balances.GetN(a.Pack())
	return n
}

// TotalPaid - committed sum of all balances
func (l *Ledger) TotalPaid() uint64 {
	n, _ := l.settings.GetN(totalPaidKey)
	return n
}
