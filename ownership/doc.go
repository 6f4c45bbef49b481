// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - holder registry
//
// from storage/doc.go:
//
//   H ⧺ id               - current holder of an item
//                          data: packed holder
//   L ⧺ holder ⧺ id      - list of held items, ordered by id
//                          data: (empty)
//   C ⧺ holder           - number of items held
//                          data: count
//   S ⧺ "total-assigned" - number of items with a holder
//                          data: count
package ownership
