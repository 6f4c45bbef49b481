// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// Item - a root or derived record
type Item struct {
	UnitPrice  uint64 `json:"unitPrice,string"`
	CloneLimit uint64 `json:"cloneLimit,string"`
	CloneCount uint64 `json:"cloneCount,string"`
	OriginId   uint64 `json:"originId,string"`
}

// IsZero - the value read for id zero, unissued or removed ids
func (item Item) IsZero() bool {
	return Item{} == item
}

// IsRootOf - true if this item, stored at id, is a root
func (item Item) IsRootOf(id uint64) bool {
	return 0 != id && item.OriginId == id
}

// Derive - the derived item produced by one replication of this root
//
// the price is carried for display, the derived item cannot be replicated
func (item Item) Derive(rootId uint64) Item {
	return Item{
		UnitPrice:  item.UnitPrice,
		CloneLimit: 0,
		CloneCount: 0,
		OriginId:   rootId,
	}
}

// Remaining - replications still available on a root
func (item Item) Remaining() uint64 {
	if item.CloneCount >= item.CloneLimit {
		return 0
	}
	return item.CloneLimit - item.CloneCount
}
