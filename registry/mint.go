// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/storage"
)

// Mint - create a root item held by holder
func (r *registry) Mint(caller account.Account, holder account.Account, unitPrice uint64, cloneLimit uint64, uri string) (uint64, error) {
	id := uint64(0)

	err := r.update(opMint, func(trx storage.Transaction) error {
		if !r.settings.MintEnabled(trx) {
			return fault.NotMintable
		}
		if err := r.authorize(caller); nil != err {
			return err
		}
		if holder.IsZero() {
			return fault.InvalidAccount
		}

		var err error
		id, err = r.records.Append(trx, record.Item{
			UnitPrice:  unitPrice,
			CloneLimit: cloneLimit,
			CloneCount: 0,
		})
		if nil != err {
			return err
		}

		err = r.holders.Assign(trx, id, holder)
		if nil != err {
			return err
		}
		return r.metadata.SetURI(trx, id, uri)
	})
	if nil != err {
		return 0, err
	}

	r.log.Infof("mint: id: %d  holder: %s  price: %d  limit: %d", id, holder, unitPrice, cloneLimit)
	return id, nil
}
