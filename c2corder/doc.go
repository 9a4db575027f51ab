// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package c2corder - member-to-member trade orders
//
// a c2c order records a direct trade between members, in either the
// sell or buy direction, with a transaction amount and a total that
// must cover it.  Its state machine extends the plain order one with
// a Notarizing status reachable from most stages; cancel stays
// restricted to Pending/Paid and complete to Delivered/Notarizing.
//
// records are indexed by owning member, by institution and by
// current status; mutations follow the same single commit and
// one-event-per-mutation discipline as package order
package c2corder
