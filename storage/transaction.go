// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - batched write access to the pools
//
// puts and deletes accumulate in a single batch; Commit writes the
// batch atomically, Abort discards it leaving the database untouched
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type TransactionData struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		dataAccess: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
