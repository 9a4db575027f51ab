// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codelist - packed lists of record codes
//
// the denormalised indices store, under one bucket key, the codes of
// every record matching that bucket (an owner, an institution or a
// status).  Each bucket value is a Packed byte string of
// length-prefixed entries, appended in insertion order.
//
// Index wraps a storage pool with a fixed capacity per bucket and
// keeps bucket maintenance inside the caller's transaction, so a
// failed record mutation never leaves a stray index entry
package codelist
