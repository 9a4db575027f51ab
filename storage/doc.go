// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database divided into a series of
// prefixed pools, one pool per record or index kind
//
// all mutations go through a single Transaction backed by one
// LevelDB batch, so a sequence of puts and deletes across any
// number of pools either commits as a whole or not at all
//
// ephemeral data is not stored here; only the records and the
// denormalised index buckets derived from them
package storage
