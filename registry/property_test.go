// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/fixtures"
	"github.com/bitmark-inc/clonemarkd/payment"
	"github.com/bitmark-inc/clonemarkd/registry"
)

func TestSplitFeeExact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.Uint64().Draw(rt, "total")
		percentage := rapid.Uint64Range(0, 100).Draw(rt, "percentage")

		ownerFee, holderFee, err := registry.SplitFee(total, percentage)
		if nil != err {
			rt.Fatalf("split error: %s", err)
		}
		if ownerFee+holderFee != total {
			rt.Fatalf("owner: %d + holder: %d != total: %d", ownerFee, holderFee, total)
		}

		expected := new(big.Int).SetUint64(total)
		expected.Mul(expected, new(big.Int).SetUint64(percentage))
		expected.Quo(expected, big.NewInt(100))
		if expected.Uint64() != ownerFee {
			rt.Fatalf("owner: %d  expected: %s", ownerFee, expected)
		}
	})
}

func TestSplitFeeRange(t *testing.T) {
	_, _, err := registry.SplitFee(100, 101)
	assert.Equal(t, fault.InvalidRange, err, "percentage above 100")

	owner, holder, err := registry.SplitFee(^uint64(0), 100)
	assert.Nil(t, err, "maximum")
	assert.Equal(t, ^uint64(0), owner, "all to owner")
	assert.Equal(t, uint64(0), holder, "none to holder")
}

func TestTotalCost(t *testing.T) {
	limit := new(big.Int).SetUint64(^uint64(0))

	rapid.Check(t, func(rt *rapid.T) {
		unitPrice := rapid.Uint64().Draw(rt, "unitPrice")
		count := rapid.Uint64Range(0, 1000).Draw(rt, "count")

		expected := new(big.Int).SetUint64(unitPrice)
		expected.Mul(expected, big.NewInt(payment.ScalingFactor))
		expected.Mul(expected, new(big.Int).SetUint64(count))

		total, err := registry.TotalCost(unitPrice, count)
		if expected.Cmp(limit) > 0 {
			if fault.ArithmeticOverflow != err {
				rt.Fatalf("price: %d  count: %d  expected overflow, got: %v", unitPrice, count, err)
			}
			return
		}
		// a zero count still reports an overflowing unit cost
		if nil != err && 0 != count {
			rt.Fatalf("price: %d  count: %d  error: %s", unitPrice, count, err)
		}
		if nil == err && expected.Uint64() != total {
			rt.Fatalf("total: %d  expected: %s", total, expected)
		}
	})
}

// random clone and retire sequences keep every root within its limit
// and every derived item inert
func TestCloneRetireInvariants(t *testing.T) {
	r := setup(t)
	defer teardown()

	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.Uint64Range(0, 8).Draw(rt, "limit")
		root, err := r.Mint(fixtures.Administrator, fixtures.Holder, 1, limit, "")
		if nil != err {
			rt.Fatalf("mint error: %s", err)
		}

		live := []uint64{}
		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps; i += 1 {
			if 0 == len(live) || rapid.Bool().Draw(rt, "clone") {
				count := rapid.Uint64Range(1, 4).Draw(rt, "count")
				result, err := r.Clone(fixtures.Recipient, fixtures.Recipient, root, count, count*payment.ScalingFactor)
				before := uint64(len(live))
				switch {
				case before+count <= limit:
					if nil != err {
						rt.Fatalf("clone: %d with %d of %d: %s", count, before, limit, err)
					}
					live = append(live, result.Ids...)
				default:
					if fault.CloneLimitExceeded != err {
						rt.Fatalf("clone: %d with %d of %d: expected limit error, got: %v", count, before, limit, err)
					}
				}
			} else {
				n := rapid.IntRange(0, len(live)-1).Draw(rt, "retire")
				if err := r.Retire(fixtures.Administrator, live[n]); nil != err {
					rt.Fatalf("retire: %d: %s", live[n], err)
				}
				live = append(live[:n], live[n+1:]...)
			}

			item := r.GetItem(root)
			if item.CloneCount > item.CloneLimit {
				rt.Fatalf("root: %+v over limit", item)
			}
			if uint64(len(live)) != item.CloneCount {
				rt.Fatalf("root count: %d  live: %d", item.CloneCount, len(live))
			}
		}

		for _, id := range live {
			item := r.GetItem(id)
			if 0 != item.CloneLimit || 0 != item.CloneCount || root != item.OriginId {
				rt.Fatalf("derived: %d  item: %+v", id, item)
			}
		}
	})
}
