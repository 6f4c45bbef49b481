// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/util"
)

// record format version, first byte of every packed item
const itemVersion = 0x01

// Packed - item as stored
//
//   version(1) ++ varint(unitPrice) ++ varint(cloneLimit)
//              ++ varint(cloneCount) ++ varint(originId)
type Packed []byte

// Pack - convert an item to its stored form
func (item Item) Pack() Packed {
	buffer := make([]byte, 1, 1+4*util.Varint64MaximumBytes)
	buffer[0] = itemVersion
	buffer = util.AppendVarint64(buffer, item.UnitPrice)
	buffer = util.AppendVarint64(buffer, item.CloneLimit)
	buffer = util.AppendVarint64(buffer, item.CloneCount)
	buffer = util.AppendVarint64(buffer, item.OriginId)
	return buffer
}

// Unpack - recover an item from its stored form
func (record Packed) Unpack() (Item, error) {
	if 0 == len(record) {
		return Item{}, fault.WrongRecordLength
	}
	if itemVersion != record[0] {
		return Item{}, fault.UnsupportedRecordVersion
	}

	fields := [4]uint64{}
	n := 1
	for i := range fields {
		value, count := util.FromVarint64(record[n:])
		if 0 == count {
			return Item{}, fault.WrongRecordLength
		}
		fields[i] = value
		n += count
	}
	if n != len(record) {
		return Item{}, fault.WrongRecordLength
	}

	return Item{
		UnitPrice:  fields[0],
		CloneLimit: fields[1],
		CloneCount: fields[2],
		OriginId:   fields[3],
	}, nil
}
