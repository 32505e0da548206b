// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/memes"
	"github.com/bitmark-inc/memecanon/rpc/node"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, chainName string, program *registry.Program, l ledger.Handle, counter node.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(memes.New(log, program))
	_ = server.Register(node.New(log, chainName, program.Id(), l, start, version, counter))

	return server
}
