// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/clonemarkd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAmount   = fault.InvalidError("invalid amount")
	ErrInvalidBoolean  = fault.InvalidError("invalid boolean, use true or false")
	ErrInvalidPrice    = fault.InvalidError("invalid price, use a whole number of price units")
	ErrMissingId       = fault.InvalidError("item id is required")
	ErrMissingIdentity = fault.InvalidError("identity is required, use --identity or CLONEMARK_IDENTITY")
)
