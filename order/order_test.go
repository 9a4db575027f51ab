// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/order"
	"github.com/marketmesh/marketd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var (
	creator = account.Account{1, 2, 3}
	someone = account.Account{9, 9, 9}
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
	return order.Initialise(order.Configuration{})
}

func teardown() {
	_ = order.Finalise()
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

func oneItem() []order.Item {
	return []order.Item{
		{ProductCode: "P1", Quantity: 2, PricePerUnit: 100, Weight: 500},
	}
}

// drain the bus, then return a getter for the single next event
func captureEvents() func(t *testing.T) interface{} {
	messagebus.Flush()
	return func(t *testing.T) interface{} {
		select {
		case m := <-messagebus.Chan():
			return m.Item
		default:
			t.Fatal("no event emitted")
			return nil
		}
	}
}

func assertNoEvent(t *testing.T) {
	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected event: %#v", m.Item)
	default:
	}
}

func TestCreateOrder(t *testing.T) {
	next := captureEvents()

	err := order.Create(creator, "O1", "M1", "I1", 10, nil, nil, nil, oneItem())
	assert.Nil(t, err, "create failed")

	record, err := order.Get("O1")
	assert.Nil(t, err, "get failed")
	assert.Equal(t, order.Pending, record.Status, "wrong initial status")
	assert.Equal(t, uint64(210), record.TotalAmount, "wrong total amount")
	assert.Equal(t, uint64(1000), record.TotalWeight, "wrong total weight")
	assert.Equal(t, creator, record.Creator, "wrong creator")

	owned, _ := order.ListForOwner("M1")
	assert.Contains(t, owned, "O1", "missing from owner index")

	inst, _ := order.ListForInstitution("I1")
	assert.Contains(t, inst, "O1", "missing from institution index")

	pending, _ := order.ListForStatus(order.Pending)
	assert.Contains(t, pending, "O1", "missing from status index")

	ev := next(t)
	created, ok := ev.(order.CreatedEvent)
	assert.True(t, ok, "wrong event type: %#v", ev)
	assert.Equal(t, "O1", created.OrderCode, "wrong event code")
	assertNoEvent(t)
}

func TestCreateDuplicate(t *testing.T) {
	err := order.Create(creator, "O-dup", "M1", "I1", 0, nil, nil, nil, oneItem())
	assert.Nil(t, err, "create failed")

	next := captureEvents()
	err = order.Create(creator, "O-dup", "M1", "I1", 0, nil, nil, nil, oneItem())
	assert.Equal(t, fault.OrderAlreadyExists, err, "duplicate accepted")
	assertNoEvent(t)
	_ = next
}

func TestCreateEmptyItems(t *testing.T) {
	err := order.Create(creator, "O-empty", "M1", "I1", 0, nil, nil, nil, nil)
	assert.Equal(t, fault.EmptyOrderItems, err, "empty item list accepted")

	_, err = order.Get("O-empty")
	assert.Equal(t, fault.OrderNotFound, err, "record created on failure")
}

func TestCreateZeroQuantityItem(t *testing.T) {
	items := []order.Item{{ProductCode: "P1", Quantity: 0, PricePerUnit: 5, Weight: 1}}
	err := order.Create(creator, "O-zero", "M1", "I1", 0, nil, nil, nil, items)
	assert.Equal(t, fault.InvalidItemQuantity, err, "zero quantity accepted")
}

func TestCreateOverlongStrings(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	err := order.Create(creator, string(long), "M1", "I1", 0, nil, nil, nil, oneItem())
	assert.Equal(t, fault.StringTooLong, err, "overlong code accepted")

	phone := "0123456789012345678901234567890123"
	err = order.Create(creator, "O-phone", "M1", "I1", 0, &phone, nil, nil, oneItem())
	assert.Equal(t, fault.StringTooLong, err, "overlong phone accepted")
}

func TestUpdateStatusMovesBucket(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-move", "M2", "I2", 0, nil, nil, nil, oneItem()), "create failed")

	next := captureEvents()
	err := order.UpdateStatus(creator, "O-move", order.Paid)
	assert.Nil(t, err, "status update failed")

	record, _ := order.Get("O-move")
	assert.Equal(t, order.Paid, record.Status, "status not updated")

	pending, _ := order.ListForStatus(order.Pending)
	assert.NotContains(t, pending, "O-move", "still in old status bucket")
	paid, _ := order.ListForStatus(order.Paid)
	assert.Contains(t, paid, "O-move", "missing from new status bucket")

	ev := next(t)
	updated, ok := ev.(order.StatusUpdatedEvent)
	assert.True(t, ok, "wrong event type: %#v", ev)
	assert.Equal(t, order.Paid, updated.Status, "wrong event status")
	assertNoEvent(t)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-illegal", "M2", "I2", 0, nil, nil, nil, oneItem()), "create failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-illegal", order.Paid), "to paid failed")

	next := captureEvents()
	err := order.UpdateStatus(creator, "O-illegal", order.Completed)
	assert.Equal(t, fault.InvalidStatusTransition, err, "illegal transition accepted")

	record, _ := order.Get("O-illegal")
	assert.Equal(t, order.Paid, record.Status, "status mutated on failure")
	assertNoEvent(t)
	_ = next
}

func TestUpdateStatusSameStatus(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-same", "M2", "I2", 0, nil, nil, nil, oneItem()), "create failed")

	err := order.UpdateStatus(creator, "O-same", order.Pending)
	assert.Equal(t, fault.InvalidStatusTransition, err, "no-op transition accepted")
}

func TestUpdateStatusNotCreator(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-auth", "M2", "I2", 0, nil, nil, nil, oneItem()), "create failed")

	err := order.UpdateStatus(someone, "O-auth", order.Paid)
	assert.Equal(t, fault.NotAuthorized, err, "non-creator accepted")

	record, _ := order.Get("O-auth")
	assert.Equal(t, order.Pending, record.Status, "status mutated on failure")
}

func TestCancelAfterDelivery(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-cancel", "M3", "I3", 0, nil, nil, nil, oneItem()), "create failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-cancel", order.Paid), "to paid failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-cancel", order.Delivered), "to delivered failed")

	err := order.Cancel(creator, "O-cancel")
	assert.Equal(t, fault.InvalidStatusTransition, err, "cancel after delivery accepted")

	record, _ := order.Get("O-cancel")
	assert.Equal(t, order.Delivered, record.Status, "status mutated on failure")
}

func TestCancelPending(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-cancel2", "M3", "I3", 0, nil, nil, nil, oneItem()), "create failed")

	next := captureEvents()
	assert.Nil(t, order.Cancel(creator, "O-cancel2"), "cancel failed")

	record, _ := order.Get("O-cancel2")
	assert.Equal(t, order.Cancelled, record.Status, "not cancelled")

	cancelled, _ := order.ListForStatus(order.Cancelled)
	assert.Contains(t, cancelled, "O-cancel2", "missing from cancelled bucket")

	_, ok := next(t).(order.CancelledEvent)
	assert.True(t, ok, "wrong event type")
	assertNoEvent(t)
}

func TestUpdateExpressInfo(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-express", "M3", "I3", 0, nil, nil, nil, oneItem()), "create failed")

	err := order.UpdateExpressInfo(creator, "O-express", "ShipFast", "SF-0001")
	assert.Nil(t, err, "express update failed")

	record, _ := order.Get("O-express")
	assert.Equal(t, "ShipFast", record.ExpressCompany, "company not stored")
	assert.Equal(t, "SF-0001", record.ExpressNumber, "number not stored")
}

func TestDeleteRemovesAllIndexEntries(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-del", "M4", "I4", 0, nil, nil, nil, oneItem()), "create failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-del", order.Paid), "to paid failed")

	next := captureEvents()
	assert.Nil(t, order.Delete(creator, "O-del"), "delete failed")

	_, err := order.Get("O-del")
	assert.Equal(t, fault.OrderNotFound, err, "record survived delete")

	owned, _ := order.ListForOwner("M4")
	assert.NotContains(t, owned, "O-del", "orphan owner entry")
	inst, _ := order.ListForInstitution("I4")
	assert.NotContains(t, inst, "O-del", "orphan institution entry")
	paid, _ := order.ListForStatus(order.Paid)
	assert.NotContains(t, paid, "O-del", "orphan status entry")

	_, ok := next(t).(order.DeletedEvent)
	assert.True(t, ok, "wrong event type")
	assertNoEvent(t)
}

func TestDeleteNotCreator(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-del2", "M4", "I4", 0, nil, nil, nil, oneItem()), "create failed")

	err := order.Delete(someone, "O-del2")
	assert.Equal(t, fault.NotAuthorized, err, "non-creator delete accepted")

	_, err = order.Get("O-del2")
	assert.Nil(t, err, "record removed on failure")
}

func TestTransitionClosure(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Paid, order.Delivered,
		order.Cancelled, order.Completed, order.Refunded,
	}
	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Paid, order.Cancelled},
		order.Paid:      {order.Delivered, order.Refunded, order.Cancelled},
		order.Delivered: {order.Completed},
		order.Completed: {order.Refunded},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, a := range allowed[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to),
				"transition %s → %s", from, to)
		}
	}
}

func TestCreateOwnerListFull(t *testing.T) {
	_ = order.Finalise()
	assert.Nil(t, order.Initialise(order.Configuration{OwnerIndexSize: 1}), "initialise failed")
	defer func() {
		_ = order.Finalise()
		_ = order.Initialise(order.Configuration{})
	}()

	assert.Nil(t, order.Create(creator, "O-cap1", "M-cap", "I-cap", 0, nil, nil, nil, oneItem()), "create failed")

	next := captureEvents()
	err := order.Create(creator, "O-cap2", "M-cap", "I-cap", 0, nil, nil, nil, oneItem())
	assert.Equal(t, fault.OwnerListFull, err, "full owner list accepted")

	_, err = order.Get("O-cap2")
	assert.Equal(t, fault.OrderNotFound, err, "record created on failure")

	owned, _ := order.ListForOwner("M-cap")
	assert.Equal(t, []string{"O-cap1"}, owned, "wrong owner list")
	institution, _ := order.ListForInstitution("I-cap")
	assert.NotContains(t, institution, "O-cap2", "indexed on failure")
	pending, _ := order.ListForStatus(order.Pending)
	assert.NotContains(t, pending, "O-cap2", "indexed on failure")
	assertNoEvent(t)
	_ = next
}

func TestUpdateStatusFullBucket(t *testing.T) {
	assert.Nil(t, order.Create(creator, "O-slot1", "M4", "I4", 0, nil, nil, nil, oneItem()), "create failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-slot1", order.Paid), "to paid failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-slot1", order.Refunded), "to refunded failed")
	assert.Nil(t, order.Create(creator, "O-slot2", "M4", "I4", 0, nil, nil, nil, oneItem()), "create failed")
	assert.Nil(t, order.UpdateStatus(creator, "O-slot2", order.Paid), "to paid failed")

	_ = order.Finalise()
	assert.Nil(t, order.Initialise(order.Configuration{StatusIndexSize: 1}), "initialise failed")
	defer func() {
		_ = order.Finalise()
		_ = order.Initialise(order.Configuration{})
	}()

	next := captureEvents()
	err := order.UpdateStatus(creator, "O-slot2", order.Refunded)
	assert.Equal(t, fault.StatusListFull, err, "full status bucket accepted")

	record, _ := order.Get("O-slot2")
	assert.Equal(t, order.Paid, record.Status, "status mutated on failure")

	paid, _ := order.ListForStatus(order.Paid)
	assert.Contains(t, paid, "O-slot2", "removed from old bucket on failure")
	refunded, _ := order.ListForStatus(order.Refunded)
	assert.Equal(t, []string{"O-slot1"}, refunded, "wrong refunded bucket")
	assertNoEvent(t)
	_ = next
}
