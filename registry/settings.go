// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
)

// SetFeePercentage - beneficiary share of clone payments, 0 to 100
func (r *registry) SetFeePercentage(caller account.Account, percentage uint64) error {
	return r.update(opSetFeePercentage, func(trx storage.Transaction) error {
		if err := r.authorize(caller); nil != err {
			return err
		}
		return r.settings.SetFeePercentage(trx, percentage)
	})
}

// SetMintEnabled - allow or stop mint and clone
func (r *registry) SetMintEnabled(caller account.Account, enabled bool) error {
	return r.update(opSetMintEnabled, func(trx storage.Transaction) error {
		if err := r.authorize(caller); nil != err {
			return err
		}
		return r.settings.SetMintEnabled(trx, enabled)
	})
}

// SetPrice - change an item's unit price
//
// no check against the item's counters; a derived item keeps its
// limit of zero whatever its price
func (r *registry) SetPrice(caller account.Account, id uint64, price uint64) error {
	return r.update(opSetPrice, func(trx storage.Transaction) error {
		if err := r.authorize(caller); nil != err {
			return err
		}
		item := r.records.Get(trx, id)
		if item.IsZero() {
			return fault.NotFound
		}
		item.UnitPrice = price
		return r.records.Update(trx, id, item)
	})
}

// SetMetadataURI - replace an item's URI
func (r *registry) SetMetadataURI(caller account.Account, id uint64, uri string) error {
	return r.update(opSetMetadataURI, func(trx storage.Transaction) error {
		if err := r.authorize(caller); nil != err {
			return err
		}
		if r.records.Get(trx, id).IsZero() {
			return fault.NotFound
		}
		return r.metadata.SetURI(trx, id, uri)
	})
}
