// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/clonemarkd/fault"
)

// Transaction - staged writes to the database
//
// reads through the transaction see its own staged writes
// Commit writes everything as a single leveldb batch
// Abort discards everything
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    *writeCache
}

func newTransaction(db *leveldb.DB, readOnly bool) *transaction {
	return &transaction{
		inUse:    false,
		readOnly: readOnly,
		db:       db,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

// Begin - claim the transaction, fails if it is already open
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	t.inUse = true
	t.batch.Reset()
	t.cache.Clear()
	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - stage a key/value pair
func (t *transaction) Put(h Handle, key []byte, value []byte) {
	k := h.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.Lock()
	t.batch.Put(k, v)
	t.cache.Set(dbPut, k, v)
	t.Unlock()
}

// PutN - stage a big endian uint64 value
func (t *transaction) PutN(h Handle, key []byte, value uint64) {
	t.Put(h, key, encodeN(value))
}

// Delete - stage removal of a key
func (t *transaction) Delete(h Handle, key []byte) {
	k := h.prefixKey(key)

	t.Lock()
	t.batch.Delete(k)
	t.cache.Set(dbDelete, k, nil)
	t.Unlock()
}

// Get - staged value if any, otherwise committed value
func (t *transaction) Get(h Handle, key []byte) []byte {
	t.Lock()
	data, found := t.cache.Get(h.prefixKey(key))
	t.Unlock()

	if found {
		if dbDelete == data.op {
			return nil
		}
		return data.value
	}
	return h.Get(key)
}

// GetN - as Get, decoded as big endian uint64
func (t *transaction) GetN(h Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(h, key))
}

// Has - as Get, only checking existence
func (t *transaction) Has(h Handle, key []byte) bool {
	t.Lock()
	data, found := t.cache.Get(h.prefixKey(key))
	t.Unlock()

	if found {
		return dbPut == data.op
	}
	return h.Has(key)
}

// Commit - write all staged data and release the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}

	var err error
	if t.readOnly {
		if t.batch.Len() > 0 {
			err = fault.DatabaseIsReadOnly
		}
	} else {
		err = t.db.Write(t.batch, nil)
	}

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	return err
}

// Abort - discard all staged data and release the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
