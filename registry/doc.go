// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - mint, clone and retire of items
//
// A root item is created by Mint and carries a unit price and a clone
// limit. Clone creates derived items from a root, taking payment of
// unitPrice × ScalingFactor for each one: the configured fee
// percentage goes to the beneficiary, the rest to the root's holder,
// and any overpayment is refunded to the caller. Retire removes an
// item and, for a derived item, gives its slot back to the root.
//
// Every state changing call runs under one mutex inside one storage
// transaction; any error aborts the transaction so a failed call
// leaves no trace.
package registry
