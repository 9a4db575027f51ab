// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - tradable institutional tokens
//
// a token is keyed by (token code, institution code), priced and
// stocked, and trades in a fixed direction: sell tokens move stock
// out to buyers, buy tokens accumulate stock from sellers.  Besides
// the institution index, buy trades record the (code, institution)
// pair under the trading account so a member's holdings can be
// listed.
//
// catalogue maintenance is creator-gated; trading is open to any
// caller
package token
