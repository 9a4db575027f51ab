// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package order - institutional purchase orders
//
// an order is created by a member against an institution, carries a
// list of priced items and moves through a fixed status state machine
// (Pending → Paid → Delivered → Completed, with Cancelled and
// Refunded side exits).  The primary record is indexed three ways:
// by owning member, by institution and by current status.
//
// every mutation is creator-gated and commits the record plus all
// affected index buckets in one storage transaction; a validation
// failure leaves the store byte-for-byte unchanged.  Exactly one
// event goes onto the message bus per successful mutation.
package order
