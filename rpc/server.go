// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/counter"
)

// the argument passed to the listener callback
type serverArgument struct {
	log    *logger.L
	server *rpc.Server
}

var connectionCount counter.Counter

// create an RPC server instance with all services registered
func createServer(log *logger.L, version string, start time.Time) *rpc.Server {

	server := rpc.NewServer()

	server.Register(&Order{
		log:     log,
		limiter: rate.NewLimiter(rateLimitOrder, rateBurstOrder),
	})
	server.Register(&C2COrder{
		log:     log,
		limiter: rate.NewLimiter(rateLimitC2COrder, rateBurstC2COrder),
	})
	server.Register(&Product{
		log:     log,
		limiter: rate.NewLimiter(rateLimitProduct, rateBurstProduct),
	})
	server.Register(&Token{
		log:     log,
		limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
	})
	server.Register(&Node{
		log:     log,
		limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
	})

	return server
}

// listener callback
func callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	log := serverArgument.log
	log.Info("connection opened")

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.server.ServeCodec(codec)

	log.Info("connection closed")
}
