// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codelist

import (
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Index - a pool of capped code list buckets
type Index struct {
	pool  storage.Handle
	limit int
}

// NewIndex - attach a bucket index to its storage pool
func NewIndex(pool storage.Handle, limit int) *Index {
	return &Index{
		pool:  pool,
		limit: limit,
	}
}

// Insert - add an entry to a bucket inside the caller's transaction
//
// re-inserting an entry already present is a no-op; a bucket at
// capacity returns fault.ListFull leaving the transaction untouched
func (ix *Index) Insert(trx storage.Transaction, bucket []byte, entry []byte) error {
	packed := Packed(trx.Get(ix.pool, bucket))
	if packed.Contains(entry) {
		return nil
	}
	if packed.Count() >= ix.limit {
		return fault.ListFull
	}
	trx.Put(ix.pool, bucket, packed.Append(entry))
	return nil
}

// Remove - drop an entry from a bucket inside the caller's transaction
//
// the bucket key itself is deleted when its last entry goes
func (ix *Index) Remove(trx storage.Transaction, bucket []byte, entry []byte) {
	packed := Packed(trx.Get(ix.pool, bucket))
	remaining, found := packed.Remove(entry)
	if !found {
		return
	}
	if 0 == len(remaining) {
		trx.Delete(ix.pool, bucket)
		return
	}
	trx.Put(ix.pool, bucket, remaining)
}

// Move - transfer an entry between buckets inside one transaction
func (ix *Index) Move(trx storage.Transaction, from []byte, to []byte, entry []byte) error {
	ix.Remove(trx, from, entry)
	return ix.Insert(trx, to, entry)
}

// List - the committed entries of a bucket, insertion order
func (ix *Index) List(bucket []byte) [][]byte {
	return Packed(ix.pool.Get(bucket)).Unpack()
}

// Count - number of entries in a bucket
func (ix *Index) Count(bucket []byte) int {
	return Packed(ix.pool.Get(bucket)).Count()
}
