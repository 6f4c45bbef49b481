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

// CloneResult - the outcome of a successful clone
type CloneResult struct {
	Ids       []uint64 `json:"ids"`
	TotalCost uint64   `json:"totalCost,string"`
	OwnerFee  uint64   `json:"ownerFee,string"`
	HolderFee uint64   `json:"holderFee,string"`
	Refund    uint64   `json:"refund,string"`
}

// Clone - create count derived items of rootId for recipient
//
// paidAmount is in base payment units; the owner fee goes to the
// beneficiary, the holder fee to the root's current holder and any
// excess back to the caller
func (r *registry) Clone(caller account.Account, recipient account.Account, rootId uint64, count uint64, paidAmount uint64) (*CloneResult, error) {
	result := &CloneResult{}

	err := r.update(opClone, func(trx storage.Transaction) error {
		if !r.settings.MintEnabled(trx) {
			return fault.NotMintable
		}

		root := r.records.Get(trx, rootId)
		if root.IsZero() {
			return fault.NotFound
		}
		if 0 == count {
			return fault.InvalidCount
		}

		total, err := TotalCost(root.UnitPrice, count)
		if nil != err {
			return err
		}

		// derived items have a zero limit so always fail here
		if count > root.Remaining() {
			return fault.CloneLimitExceeded
		}
		if paidAmount < total {
			return fault.InsufficientPayment
		}
		if caller.IsZero() || recipient.IsZero() {
			return fault.InvalidAccount
		}

		ownerFee, holderFee, err := SplitFee(total, r.settings.FeePercentage(trx))
		if nil != err {
			return err
		}
		refund := paidAmount - total

		holder := r.holders.HolderOf(trx, rootId)
		if err := r.sender.Send(trx, r.beneficiary, ownerFee); nil != err {
			return err
		}
		if err := r.sender.Send(trx, holder, holderFee); nil != err {
			return err
		}
		if err := r.sender.Send(trx, caller, refund); nil != err {
			return err
		}

		root.CloneCount += count
		if err := r.records.Update(trx, rootId, root); nil != err {
			return err
		}

		uri := r.metadata.GetURI(trx, rootId)
		ids := make([]uint64, 0, count)
		for i := uint64(0); i < count; i += 1 {
			id, err := r.records.Append(trx, root.Derive(rootId))
			if nil != err {
				return err
			}
			if err := r.holders.Assign(trx, id, recipient); nil != err {
				return err
			}
			if err := r.metadata.SetURI(trx, id, uri); nil != err {
				return err
			}
			ids = append(ids, id)
		}

		result.Ids = ids
		result.TotalCost = total
		result.OwnerFee = ownerFee
		result.HolderFee = holderFee
		result.Refund = refund
		return nil
	})
	if nil != err {
		return nil, err
	}

	if nil != r.metrics {
		r.metrics.Cloned(count, result.TotalCost)
	}
	r.log.Infof("clone: root: %d  count: %d  recipient: %s  cost: %d  refund: %d", rootId, count, recipient, result.TotalCost, result.Refund)
	return result, nil
}
