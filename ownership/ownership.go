// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

const uint64ByteSize = 8

var totalAssignedKey = []byte("total-assigned")

// Registry - which account holds each item
type Registry interface {
	Assign(storage.Transaction, uint64, account.Account) error
	Revoke(storage.Transaction, uint64) error
	HolderOf(storage.Transaction, uint64) account.Account
	CountHeldBy(storage.Transaction, account.Account) uint64
	TotalAssigned(storage.Transaction) uint64
	ListHeldBy(account.Account, uint64, int) ([]uint64, error)
}

// Pools - storage used by the registry
type Pools struct {
	Holders     storage.Handle
	HolderList  storage.Handle
	HolderCount storage.Handle
	Settings    storage.Handle
}

type registry struct {
	log   *logger.L
	pools Pools
}

// New - create a holder registry
func New(log *logger.L, pools Pools) Registry {
	return &registry{
		log:   log,
		pools: pools,
	}
}

func idBytes(id uint64) []byte {
	b := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(b, id)
	return b
}

func listKey(holder account.Account, id uint64) []byte {
	return append(holder.Pack(), idBytes(id)...)
}

// Assign - make holder the holder of id, replacing any previous holder
func (r *registry) Assign(trx storage.Transaction, id uint64, holder account.Account) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if 0 == id {
		return fault.IdOutOfRange
	}
	if holder.IsZero() {
		return fault.InvalidAccount
	}

	previous := r.HolderOf(trx, id)
	if previous == holder {
		return nil
	}
	if !previous.IsZero() {
		r.remove(trx, id, previous)
	}

	trx.Put(r.pools.Holders, idBytes(id), holder.Pack())
	trx.Put(r.pools.HolderList, listKey(holder, id), []byte{})
	r.adjust(trx, r.pools.HolderCount, holder.Pack(), 1)
	if previous.IsZero() {
		r.adjust(trx, r.pools.Settings, totalAssignedKey, 1)
	}

	r.log.Debugf("assign: id: %d  holder: %s  previous: %s", id, holder, previous)
	return nil
}

// Revoke - remove the holder of id
func (r *registry) Revoke(trx storage.Transaction, id uint64) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}

	holder := r.HolderOf(trx, id)
	if holder.IsZero() {
		return fault.NotFound
	}

	r.remove(trx, id, holder)
	r.adjust(trx, r.pools.Settings, totalAssignedKey, -1)

	r.log.Debugf("revoke: id: %d  holder: %s", id, holder)
	return nil
}

func (r *registry) remove(trx storage.Transaction, id uint64, holder account.Account) {
	trx.Delete(r.pools.Holders, idBytes(id))
	trx.Delete(r.pools.HolderList, listKey(holder, id))
	r.adjust(trx, r.pools.HolderCount, holder.Pack(), -1)
}

// counters are deleted when they reach zero
func (r *registry) adjust(trx storage.Transaction, pool storage.Handle, key []byte, delta int) {
	n, _ := trx.GetN(pool, key)
	if delta < 0 {
		if 0 == n {
			logger.Panicf("ownership: counter underflow for key: %x", key)
		}
		n -= 1
	} else {
		n += 1
	}

	if 0 == n {
		trx.Delete(pool, key)
	} else {
		trx.PutN(pool, key, n)
	}
}

// HolderOf - current holder, or the zero account
func (r *registry) HolderOf(trx storage.Transaction, id uint64) account.Account {
	var packed []byte
	if nil == trx {
		packed = r.pools.Holders.Get(idBytes(id))
	} else {
		packed = trx.Get(r.pools.Holders, idBytes(id))
	}
	if nil == packed {
		return account.Account{}
	}

	holder, _, err := account.Unpack(packed)
	if nil != err {
		logger.Panicf("ownership: corrupt holder for id: %d  data: %x  error: %s", id, packed, err)
	}
	return holder
}

// CountHeldBy - number of items the account holds
func (r *registry) CountHeldBy(trx storage.Transaction, holder account.Account) uint64 {
	if holder.IsZero() {
		return 0
	}
	if nil == trx {
		n, _ := r.pools.HolderCount.GetN(holder.Pack())
		return n
	}
	n, _ := trx.GetN(r.pools.HolderCount, holder.Pack())
	return n
}

// TotalAssigned - number of items that have a holder
func (r *registry) TotalAssigned(trx storage.Transaction) uint64 {
	if nil == trx {
		n, _ := r.pools.Settings.GetN(totalAssignedKey)
		return n
	}
	n, _ := trx.GetN(r.pools.Settings, totalAssignedKey)
	return n
}
