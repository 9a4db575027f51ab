// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/c2corder"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var (
	creator = account.Account{7}
	someone = account.Account{8}
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
	if err := storage.Initialise(databaseFileName); nil != err {
		return err
	}
	return c2corder.Initialise(c2corder.Configuration{})
}

func teardown() {
	_ = c2corder.Finalise()
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

func create(t *testing.T, code string) {
	err := c2corder.Create(creator, code, "M1", "I1", c2corder.Buy, 100, 120)
	assert.Nil(t, err, "create failed")
}

func nextEvent(t *testing.T) interface{} {
	select {
	case m := <-messagebus.Chan():
		return m.Item
	default:
		t.Fatal("no event emitted")
		return nil
	}
}

func assertNoEvent(t *testing.T) {
	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected event: %#v", m.Item)
	default:
	}
}

func TestCreate(t *testing.T) {
	messagebus.Flush()
	create(t, "C1")

	record, err := c2corder.Get("C1")
	assert.Nil(t, err, "get failed")
	assert.Equal(t, c2corder.Pending, record.Status, "wrong initial status")
	assert.Equal(t, c2corder.Buy, record.Direction, "wrong direction")
	assert.Equal(t, uint64(100), record.TransactionAmount, "wrong transaction amount")

	owned, _ := c2corder.ListForOwner("M1")
	assert.Contains(t, owned, "C1", "missing from owner index")
	inst, _ := c2corder.ListForInstitution("I1")
	assert.Contains(t, inst, "C1", "missing from institution index")
	pending, _ := c2corder.ListForStatus(c2corder.Pending)
	assert.Contains(t, pending, "C1", "missing from status index")

	_, ok := nextEvent(t).(c2corder.CreatedEvent)
	assert.True(t, ok, "wrong event type")
	assertNoEvent(t)
}

func TestCreateInvalidAmounts(t *testing.T) {
	err := c2corder.Create(creator, "C-amt", "M1", "I1", c2corder.Sell, 0, 10)
	assert.Equal(t, fault.InvalidAmount, err, "zero transaction amount accepted")

	err = c2corder.Create(creator, "C-amt", "M1", "I1", c2corder.Sell, 100, 99)
	assert.Equal(t, fault.InvalidAmount, err, "total below transaction accepted")

	_, err = c2corder.Get("C-amt")
	assert.Equal(t, fault.OrderNotFound, err, "record created on failure")
}

func TestCreateInvalidDirection(t *testing.T) {
	_, err := c2corder.DirectionFromByte(2)
	assert.Equal(t, fault.InvalidDirection, err, "direction 2 accepted")
}

func TestNotarizingFlow(t *testing.T) {
	create(t, "C-not")
	messagebus.Flush()

	err := c2corder.UpdateStatus(creator, "C-not", c2corder.Notarizing)
	assert.Nil(t, err, "to notarizing failed")

	// exactly one event even for the notarizing transition
	ev := nextEvent(t)
	updated, ok := ev.(c2corder.StatusUpdatedEvent)
	assert.True(t, ok, "wrong event type: %#v", ev)
	assert.Equal(t, c2corder.Notarizing, updated.Status, "wrong event status")
	assertNoEvent(t)

	notarizing, _ := c2corder.ListForStatus(c2corder.Notarizing)
	assert.Contains(t, notarizing, "C-not", "missing from notarizing bucket")

	// notarizing orders may be cancelled via complete only, not Cancel()
	err = c2corder.Cancel(creator, "C-not")
	assert.Equal(t, fault.InvalidStatusTransition, err, "cancel from notarizing accepted")

	messagebus.Flush()
	assert.Nil(t, c2corder.Complete(creator, "C-not"), "complete failed")

	record, _ := c2corder.Get("C-not")
	assert.Equal(t, c2corder.Completed, record.Status, "not completed")

	_, ok = nextEvent(t).(c2corder.CompletedEvent)
	assert.True(t, ok, "wrong event type")
	assertNoEvent(t)
}

func TestCompleteRequiresDeliveryOrNotarizing(t *testing.T) {
	create(t, "C-comp")

	err := c2corder.Complete(creator, "C-comp")
	assert.Equal(t, fault.InvalidStatusTransition, err, "complete from pending accepted")

	record, _ := c2corder.Get("C-comp")
	assert.Equal(t, c2corder.Pending, record.Status, "status mutated on failure")
}

func TestCancelPaid(t *testing.T) {
	create(t, "C-cancel")
	assert.Nil(t, c2corder.UpdateStatus(creator, "C-cancel", c2corder.Paid), "to paid failed")

	messagebus.Flush()
	assert.Nil(t, c2corder.Cancel(creator, "C-cancel"), "cancel failed")

	record, _ := c2corder.Get("C-cancel")
	assert.Equal(t, c2corder.Cancelled, record.Status, "not cancelled")

	_, ok := nextEvent(t).(c2corder.CancelledEvent)
	assert.True(t, ok, "wrong event type")
	assertNoEvent(t)
}

func TestUpdateStatusNotCreator(t *testing.T) {
	create(t, "C-auth")

	err := c2corder.UpdateStatus(someone, "C-auth", c2corder.Paid)
	assert.Equal(t, fault.NotAuthorized, err, "non-creator accepted")
}

func TestDeleteRemovesAllIndexEntries(t *testing.T) {
	create(t, "C-del")
	assert.Nil(t, c2corder.UpdateStatus(creator, "C-del", c2corder.Paid), "to paid failed")

	assert.Nil(t, c2corder.Delete(creator, "C-del"), "delete failed")

	_, err := c2corder.Get("C-del")
	assert.Equal(t, fault.OrderNotFound, err, "record survived delete")

	owned, _ := c2corder.ListForOwner("M1")
	assert.NotContains(t, owned, "C-del", "orphan owner entry")
	paid, _ := c2corder.ListForStatus(c2corder.Paid)
	assert.NotContains(t, paid, "C-del", "orphan status entry")
}

func TestTransitionClosure(t *testing.T) {
	all := []c2corder.Status{
		c2corder.Pending, c2corder.Paid, c2corder.Delivered,
		c2corder.Notarizing, c2corder.Cancelled, c2corder.Completed,
	}
	expectedTable := map[c2corder.Status][]c2corder.Status{
		c2corder.Pending:    {c2corder.Paid, c2corder.Cancelled, c2corder.Notarizing},
		c2corder.Paid:       {c2corder.Delivered, c2corder.Cancelled, c2corder.Notarizing},
		c2corder.Delivered:  {c2corder.Completed, c2corder.Notarizing},
		c2corder.Notarizing: {c2corder.Completed, c2corder.Cancelled},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, a := range expectedTable[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to),
				"transition %s → %s", from, to)
		}
	}
}
