// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"time"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

func fetchForUpdate(trx storage.Transaction, caller account.Account, key []byte) (*Order, error) {
	data := trx.Get(storage.Pool.C2COrders, key)
	if nil == data {
		return nil, fault.OrderNotFound
	}
	record, err := Unpack(data)
	if nil != err {
		return nil, err
	}
	if record.Creator != caller {
		return nil, fault.NotAuthorized
	}
	return record, nil
}

// move a record to a new status and rebucket it, inside one commit
func transition(caller account.Account, orderCode string, pick func(Status) (Status, error)) (Status, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return Pending, err
	}

	key := []byte(orderCode)
	record, err := fetchForUpdate(trx, caller, key)
	if nil != err {
		trx.Abort()
		return Pending, err
	}

	oldStatus := record.Status
	newStatus, err := pick(oldStatus)
	if nil != err {
		trx.Abort()
		return Pending, err
	}

	record.Status = newStatus
	record.UpdatedTime = uint64(time.Now().Unix())

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return Pending, err
	}
	trx.Put(storage.Pool.C2COrders, key, data)

	if err := globalData.statusIndex.Move(trx, oldStatus.Key(), newStatus.Key(), key); nil != err {
		trx.Abort()
		return Pending, fault.StatusListFull
	}

	if err := trx.Commit(); nil != err {
		return Pending, err
	}

	globalData.log.Infof("c2c order: %q status: %s → %s", orderCode, oldStatus, newStatus)
	return newStatus, nil
}

// UpdateStatus - move a c2c order to a caller-chosen status
func UpdateStatus(caller account.Account, orderCode string, newStatus Status) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}
	if !newStatus.IsValid() {
		return fault.InvalidStatus
	}

	status, err := transition(caller, orderCode, func(current Status) (Status, error) {
		if !current.CanTransitionTo(newStatus) {
			return Pending, fault.InvalidStatusTransition
		}
		return newStatus, nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, StatusUpdatedEvent{
		OrderCode: orderCode,
		Status:    status,
	})
	return nil
}

// Cancel - cancel a c2c order still awaiting delivery
func Cancel(caller account.Account, orderCode string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}

	_, err := transition(caller, orderCode, func(current Status) (Status, error) {
		if !current.IsCancellable() {
			return Pending, fault.InvalidStatusTransition
		}
		return Cancelled, nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, CancelledEvent{
		OrderCode: orderCode,
	})
	return nil
}

// Complete - finish a delivered or notarising c2c order
func Complete(caller account.Account, orderCode string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}

	_, err := transition(caller, orderCode, func(current Status) (Status, error) {
		if !current.IsCompletable() {
			return Pending, fault.InvalidStatusTransition
		}
		return Completed, nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, CompletedEvent{
		OrderCode: orderCode,
	})
	return nil
}
