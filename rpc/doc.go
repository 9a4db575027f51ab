// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
//
// each marketplace module is exposed as a net/rpc service over a TLS
// listener; caller identity travels as a base58 account in the
// request arguments
package rpc
