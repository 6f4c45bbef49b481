// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - administrative settings and the access gate
//
// settings live in the settings pool:
//
//   S ⧺ "fee-percentage"  - share of each clone payment for the beneficiary
//                           data: percentage
//   S ⧺ "mint-enabled"    - whether mint and clone are allowed
//                           data: 0 or 1
//
// a key that was never written reads as the configured default
package admin
