// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/mode"
	"github.com/marketmesh/marketd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for the RPC
type Node struct {
	log     *logger.L
	limiter *rate.Limiter
	start   time.Time
	version string
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - server state and record counts
type InfoReply struct {
	Version     string `json:"version"`
	Mode        string `json:"mode"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
	Orders      uint64 `json:"orders"`
	C2COrders   uint64 `json:"c2cOrders"`
	Products    uint64 `json:"products"`
	Tokens      uint64 `json:"tokens"`
}

// Info - return the server state and stored record counts
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := rateLimit(node.limiter); nil != err {
		return err
	}

	reply.Version = node.version
	reply.Mode = mode.String()
	reply.Uptime = time.Since(node.start).String()
	reply.Connections = connectionCount.Uint64()
	reply.Orders = storage.Pool.Orders.Count()
	reply.C2COrders = storage.Pool.C2COrders.Count()
	reply.Products = storage.Pool.Products.Count()
	reply.Tokens = storage.Pool.Tokens.Count()
	return nil
}
