// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codelist_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func setup() error {
	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		return err
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		return err
	}

	return storage.Initialise(databaseFileName)
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	if err := setup(); nil != err {
		teardown()
		fmt.Fprintf(os.Stderr, "setup error: %s\n", err)
		os.Exit(1)
	}
	rc := m.Run()
	teardown()
	os.Exit(rc)
}

func begin(t *testing.T) storage.Transaction {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin failed")
	return trx
}

func TestIndexInsertList(t *testing.T) {
	ix := codelist.NewIndex(storage.Pool.TestData, 10)
	bucket := []byte("owner-a")

	trx := begin(t)
	assert.Nil(t, ix.Insert(trx, bucket, []byte("code-1")), "insert failed")
	assert.Nil(t, ix.Insert(trx, bucket, []byte("code-2")), "insert failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	entries := ix.List(bucket)
	assert.Equal(t, 2, len(entries), "wrong entry count")
	assert.Equal(t, []byte("code-1"), entries[0], "insertion order lost")
	assert.Equal(t, []byte("code-2"), entries[1], "insertion order lost")
}

func TestIndexInsertIdempotent(t *testing.T) {
	ix := codelist.NewIndex(storage.Pool.TestData, 10)
	bucket := []byte("owner-b")

	trx := begin(t)
	assert.Nil(t, ix.Insert(trx, bucket, []byte("dup")), "insert failed")
	assert.Nil(t, ix.Insert(trx, bucket, []byte("dup")), "re-insert errored")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, 1, ix.Count(bucket), "duplicate entry stored")
}

func TestIndexCapacity(t *testing.T) {
	ix := codelist.NewIndex(storage.Pool.TestData, 2)
	bucket := []byte("owner-c")

	trx := begin(t)
	assert.Nil(t, ix.Insert(trx, bucket, []byte("one")), "insert failed")
	assert.Nil(t, ix.Insert(trx, bucket, []byte("two")), "insert failed")

	err := ix.Insert(trx, bucket, []byte("three"))
	assert.Equal(t, fault.ListFull, err, "capacity not enforced")

	// an entry already present is not a new insertion
	assert.Nil(t, ix.Insert(trx, bucket, []byte("two")), "re-insert at capacity errored")

	trx.Abort()
}

func TestIndexRemoveDeletesEmptyBucket(t *testing.T) {
	ix := codelist.NewIndex(storage.Pool.TestData, 10)
	bucket := []byte("owner-d")

	trx := begin(t)
	assert.Nil(t, ix.Insert(trx, bucket, []byte("solo")), "insert failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	trx = begin(t)
	ix.Remove(trx, bucket, []byte("solo"))
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.False(t, storage.Pool.TestData.Has(bucket), "empty bucket key not deleted")
}

func TestIndexMove(t *testing.T) {
	ix := codelist.NewIndex(storage.Pool.TestData, 10)
	from := []byte("status-pending")
	to := []byte("status-paid")

	trx := begin(t)
	assert.Nil(t, ix.Insert(trx, from, []byte("order-1")), "insert failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	trx = begin(t)
	assert.Nil(t, ix.Move(trx, from, to, []byte("order-1")), "move failed")
	assert.Nil(t, trx.Commit(), "commit failed")

	assert.Equal(t, 0, ix.Count(from), "entry left in source bucket")
	assert.Equal(t, 1, ix.Count(to), "entry missing from target bucket")
}
