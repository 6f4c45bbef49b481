// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/record"
)

// queries read committed state and never fail: invalid ids give zero values

// GetItem - the item, or the zero item
func (r *registry) GetItem(id uint64) record.Item {
	return r.records.Get(nil, id)
}

// GetCloneCount - clones outstanding on a root
func (r *registry) GetCloneCount(id uint64) uint64 {
	return r.records.Get(nil, id).CloneCount
}

// GetLatestId - highest id ever issued
func (r *registry) GetLatestId() uint64 {
	return r.records.LatestId(nil)
}

// HolderOf - current holder, or the zero account
func (r *registry) HolderOf(id uint64) account.Account {
	return r.holders.HolderOf(nil, id)
}

// URI - metadata URI, or empty
func (r *registry) URI(id uint64) string {
	return r.metadata.GetURI(nil, id)
}

// BalanceOf - amount credited to an account
func (r *registry) BalanceOf(a account.Account) uint64 {
	return r.balances.BalanceOf(a)
}

// CountHeldBy - number of items held
func (r *registry) CountHeldBy(a account.Account) uint64 {
	return r.holders.CountHeldBy(nil, a)
}

// ListHeldBy - page of ids held by an account
func (r *registry) ListHeldBy(a account.Account, start uint64, count int) ([]uint64, error) {
	return r.holders.ListHeldBy(a, start, count)
}

// Settings - current administrative settings
func (r *registry) Settings() admin.Snapshot {
	return r.settings.Snapshot(nil)
}
