// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/logger"
)

// ListHeldBy - committed ids held by an account, starting at id start
//
// to page through a list call again with start set to one more than
// the last id returned
func (r *registry) ListHeldBy(holder account.Account, start uint64, count int) ([]uint64, error) {
	if holder.IsZero() {
		return nil, fault.InvalidAccount
	}

	prefix := holder.Pack()
	cursor := r.pools.HolderList.NewFetchCursor().Prefix(prefix).Seek(listKey(holder, start))

	// holder ⧺ id → (empty)
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	ids := make([]uint64, 0, len(elements))
	for _, e := range elements {
		if len(e.Key) != len(prefix)+uint64ByteSize {
			logger.Panicf("ownership: malformed list key: %x", e.Key)
		}
		ids = append(ids, binary.BigEndian.Uint64(e.Key[len(prefix):]))
	}
	return ids, nil
}
