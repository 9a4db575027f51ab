// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/marketmesh/marketd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)
	return newTransaction(mock), mock, ctl
}

// this is ugly, because it uses unexported methods, so general gomock cannot be used
type testHandleMock struct {
	Handle
	putCalled    bool
	putNCalled   bool
	removeCalled bool
	getCalled    bool
}

func (m *testHandleMock) put(key []byte, value []byte)  { m.putCalled = true }
func (m *testHandleMock) putN(key []byte, value uint64) { m.putNCalled = true }
func (m *testHandleMock) remove(key []byte)             { m.removeCalled = true }
func (m *testHandleMock) Get(key []byte) []byte {
	m.getCalled = true
	return []byte{}
}
func (m *testHandleMock) GetN(key []byte) (uint64, bool) {
	m.getCalled = true
	return 0, true
}
func (m *testHandleMock) Has(key []byte) bool { return true }

func TestTransactionBegin(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	err := trx.Begin()
	assert.Nil(t, err, "begin should not return any error")
}

func TestTransactionCommit(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	_ = trx.Begin()
	err := trx.Commit()
	assert.Nil(t, err, "commit should not return any error")
}

func TestTransactionAbort(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = trx.Begin()
	trx.Abort()
}

func TestTransactionWritesGoThroughHandle(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	h := &testHandleMock{}

	_ = trx.Begin()
	trx.Put(h, []byte{}, []byte{})
	trx.PutN(h, []byte{}, 1)
	trx.Delete(h, []byte{})
	_ = trx.Get(h, []byte{})

	assert.True(t, h.putCalled, "internal method put is not called")
	assert.True(t, h.putNCalled, "internal method putN is not called")
	assert.True(t, h.removeCalled, "internal method remove is not called")
	assert.True(t, h.getCalled, "handle Get is not called")
}
