// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// All writes go through a Transaction: values are staged in a
// leveldb batch and in a write cache so that reads inside the same
// transaction see them, and nothing reaches the database until
// Commit.  Abort discards everything staged.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++     = concatenation of byte data
// 3. id     = item id as big endian uint64 (8 bytes)
// 4. holder = account packed as length(1 byte) ++ raw bytes
// 5. N      = big endian uint64 (8 bytes)
//
// Items:
//
//   I ++ id                - item record
//                            data: packed item (see record package)
//
// Settings:
//
//   S ++ name              - registry settings and counters
//                            data: N or small byte values
//
// Holders:
//
//   H ++ id                - current holder of an item
//                            data: holder
//   L ++ holder ++ id      - list of items held by a holder
//                            data: empty
//   C ++ holder            - number of items held
//                            data: N
//
// Metadata:
//
//   U ++ id                - metadata URI
//                            data: UTF-8 bytes
//
// Ledger:
//
//   B ++ holder            - payment balance
//                            data: N
//
// Testing:
//   Z ++ key               - testing data
package storage
