// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/clonemarkd/counter"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/rpc/administrator"
	"github.com/bitmark-inc/clonemarkd/rpc/holder"
	"github.com/bitmark-inc/clonemarkd/rpc/items"
	"github.com/bitmark-inc/clonemarkd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, reg registry.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(items.New(log, reg))
	_ = server.Register(administrator.New(log, reg))
	_ = server.Register(holder.New(log, reg))
	_ = server.Register(node.New(log, start, version, rpcCount, reg))

	return server
}
