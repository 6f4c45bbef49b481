// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the item data model and the record store
//
// Items are kept in the Items pool keyed by their id (big endian
// uint64).  A separate latest id counter in the Settings pool assigns
// ids: it only ever increases, so an id is never reused even after
// its record is removed.  Id zero is never issued and always reads
// as the zero item.
//
// A root item has OriginId == Id.  A derived item names its root in
// OriginId and always has CloneLimit == CloneCount == 0.
package record
