// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// key of the latest id counter in the settings pool
var latestIdKey = []byte("latest-id")

// Store - the only writer of item records
//
// a nil transaction reads committed data; writes need an open transaction
type Store interface {
	Append(storage.Transaction, Item) (uint64, error)
	Get(storage.Transaction, uint64) Item
	Update(storage.Transaction, uint64, Item) error
	Delete(storage.Transaction, uint64) error
	LatestId(storage.Transaction) uint64
}

type store struct {
	log      *logger.L
	items    storage.Handle
	settings storage.Handle
}

// New - record store over the items and settings pools
func New(log *logger.L, items storage.Handle, settings storage.Handle) Store {
	return &store{
		log:      log,
		items:    items,
		settings: settings,
	}
}

// Key - storage key for an item id
func Key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// Append - store an item under the next id
//
// a zero OriginId marks a root: it is replaced by the new id
func (s *store) Append(trx storage.Transaction, item Item) (uint64, error) {
	if nil == trx {
		return 0, fault.TransactionNotStarted
	}

	latest, _ := trx.GetN(s.settings, latestIdKey)
	if math.MaxUint64 == latest {
		return 0, fault.ArithmeticOverflow
	}
	id := latest + 1

	if 0 == item.OriginId {
		item.OriginId = id
	}

	trx.PutN(s.settings, latestIdKey, id)
	trx.Put(s.items, Key(id), item.Pack())

	s.log.Debugf("append: id: %d  item: %+v", id, item)
	return id, nil
}

// Get - the stored item or the zero item
//
// never fails: id zero, ids beyond the latest and removed ids all
// read as the zero item
func (s *store) Get(trx storage.Transaction, id uint64) Item {
	if 0 == id {
		return Item{}
	}

	var packed []byte
	if nil == trx {
		packed = s.items.Get(Key(id))
	} else {
		packed = trx.Get(s.items, Key(id))
	}
	if nil == packed {
		return Item{}
	}

	item, err := Packed(packed).Unpack()
	if nil != err {
		s.log.Criticalf("get: id: %d  packed: %x  error: %s", id, packed, err)
		logger.Panicf("record.Get: items database corrupt: %s", err)
	}
	return item
}

// Update - overwrite the item at an issued id
func (s *store) Update(trx storage.Transaction, id uint64, item Item) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if !s.inRange(trx, id) {
		return fault.IdOutOfRange
	}

	trx.Put(s.items, Key(id), item.Pack())
	s.log.Debugf("update: id: %d  item: %+v", id, item)
	return nil
}

// Delete - remove the record, the id stays allocated
func (s *store) Delete(trx storage.Transaction, id uint64) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if !s.inRange(trx, id) {
		return fault.IdOutOfRange
	}

	trx.Delete(s.items, Key(id))
	s.log.Debugf("delete: id: %d", id)
	return nil
}

// LatestId - highest id ever assigned, zero if none
func (s *store) LatestId(trx storage.Transaction) uint64 {
	if nil == trx {
		n, _ := s.settings.GetN(latestIdKey)
		return n
	}
	n, _ := trx.GetN(s.settings, latestIdKey)
	return n
}

func (s *store) inRange(trx storage.Transaction, id uint64) bool {
	return 0 != id && id <= s.LatestId(trx)
}
