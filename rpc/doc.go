// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring clonemarkd services
//
// the services are:
//   Items  - mint, clone, retire and item queries
//   Admin  - settings and per item administration
//   Holder - held items and credited balances
//   Node   - version and uptime
//
// standard golang RPC services with the JSON codec over TLS can be
// used on the client side to access these services
package rpc
