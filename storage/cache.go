// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// staged writes of the open transaction, keyed by prefixed key
type writeCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// entries live only as long as the transaction, so no expiry
func newCache() *writeCache {
	return &writeCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - second value is false if the key was not staged
// a staged delete is returned as op == dbDelete
func (c *writeCache) Get(key []byte) (cacheData, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (c *writeCache) Set(op dbOperation, key []byte, value []byte) {
	c.cache.Set(string(key), cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *writeCache) Clear() {
	c.cache.Flush()
}

func (c *writeCache) Count() int {
	return c.cache.ItemCount()
}
