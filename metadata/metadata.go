// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - per item metadata URIs
//
//   U ⧺ id  - metadata URI
//             data: URI bytes
package metadata

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumURILength - longest URI accepted
const MaximumURILength = 2048

// Store - metadata URIs keyed by item id
type Store interface {
	SetURI(storage.Transaction, uint64, string) error
	GetURI(storage.Transaction, uint64) string
	DeleteURI(storage.Transaction, uint64) error
}

type store struct {
	log  *logger.L
	pool storage.Handle
}

// New - metadata store over a pool
func New(log *logger.L, pool storage.Handle) Store {
	return &store{
		log:  log,
		pool: pool,
	}
}

func key(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// SetURI - store the URI, an empty URI removes it
func (s *store) SetURI(trx storage.Transaction, id uint64, uri string) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if 0 == id {
		return fault.IdOutOfRange
	}
	if len(uri) > MaximumURILength || !utf8.ValidString(uri) {
		return fault.InvalidURI
	}

	if "" == uri {
		trx.Delete(s.pool, key(id))
	} else {
		trx.Put(s.pool, key(id), []byte(uri))
	}
	s.log.Debugf("set: id: %d  uri: %q", id, uri)
	return nil
}

// GetURI - the URI or an empty string
func (s *store) GetURI(trx storage.Transaction, id uint64) string {
	if nil == trx {
		return string(s.pool.Get(key(id)))
	}
	return string(trx.Get(s.pool, key(id)))
}

// DeleteURI - remove any URI
func (s *store) DeleteURI(trx storage.Transaction, id uint64) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	trx.Delete(s.pool, key(id))
	return nil
}
