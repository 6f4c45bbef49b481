// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math/bits"

	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/payment"
)

// TotalCost - unitPrice × ScalingFactor × count in base payment units
func TotalCost(unitPrice uint64, count uint64) (uint64, error) {
	hi, unitCost := bits.Mul64(unitPrice, payment.ScalingFactor)
	if 0 != hi {
		return 0, fault.ArithmeticOverflow
	}
	hi, total := bits.Mul64(unitCost, count)
	if 0 != hi {
		return 0, fault.ArithmeticOverflow
	}
	return total, nil
}

// SplitFee - floor(total × percentage / 100) for the beneficiary and the
// exact remainder for the holder
//
// the product is formed in 128 bits so no total overflows
func SplitFee(total uint64, percentage uint64) (ownerFee uint64, holderFee uint64, err error) {
	if percentage > admin.MaximumFeePercentage {
		return 0, 0, fault.InvalidRange
	}

	// hi < 100 since percentage <= 100, so the quotient fits
	hi, lo := bits.Mul64(total, percentage)
	ownerFee, _ = bits.Div64(hi, lo, 100)
	return ownerFee, total - ownerFee, nil
}
