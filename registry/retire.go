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

// Retire - remove an item
//
// retiring a derived item frees one clone slot on its root; the id
// is never reissued
func (r *registry) Retire(caller account.Account, id uint64) error {
	err := r.update(opRetire, func(trx storage.Transaction) error {
		if err := r.authorize(caller); nil != err {
			return err
		}

		item := r.records.Get(trx, id)
		if item.IsZero() {
			return fault.NotFound
		}

		if !item.IsRootOf(id) {
			root := r.records.Get(trx, item.OriginId)
			if root.IsZero() || 0 == root.CloneCount {
				return fault.AccountingUnderflow
			}
			root.CloneCount -= 1
			if err := r.records.Update(trx, item.OriginId, root); nil != err {
				return err
			}
		}

		if err := r.records.Delete(trx, id); nil != err {
			return err
		}
		if err := r.metadata.DeleteURI(trx, id); nil != err {
			return err
		}
		if r.holders.HolderOf(trx, id).IsZero() {
			return nil
		}
		return r.holders.Revoke(trx, id)
	})
	if nil != err {
		return err
	}

	r.log.Infof("retire: id: %d", id)
	return nil
}
