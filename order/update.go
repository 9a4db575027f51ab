// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"time"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// fetch a record inside the transaction and verify the caller owns it
func fetchForUpdate(trx storage.Transaction, caller account.Account, key []byte) (*Order, error) {
	data := trx.Get(storage.Pool.Orders, key)
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

// UpdateStatus - move an order to a new status
//
// only transitions in the state machine table are allowed; the record
// changes status bucket in the same commit
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

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := []byte(orderCode)
	record, err := fetchForUpdate(trx, caller, key)
	if nil != err {
		trx.Abort()
		return err
	}

	oldStatus := record.Status
	if !oldStatus.CanTransitionTo(newStatus) {
		trx.Abort()
		return fault.InvalidStatusTransition
	}

	record.Status = newStatus
	record.UpdatedTime = uint64(time.Now().Unix())

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Orders, key, data)

	if err := globalData.statusIndex.Move(trx, oldStatus.Key(), newStatus.Key(), key); nil != err {
		trx.Abort()
		return fault.StatusListFull
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("order: %q status: %s → %s", orderCode, oldStatus, newStatus)
	messagebus.Send(eventSource, StatusUpdatedEvent{
		OrderCode: orderCode,
		Status:    newStatus,
	})
	return nil
}

// UpdateExpressInfo - record the shipping company and tracking number
func UpdateExpressInfo(caller account.Account, orderCode string, company string, number string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(company, maxExpressLength); nil != err {
		return err
	}
	if err := checkLength(number, maxExpressLength); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := []byte(orderCode)
	record, err := fetchForUpdate(trx, caller, key)
	if nil != err {
		trx.Abort()
		return err
	}

	record.ExpressCompany = company
	record.ExpressNumber = number
	record.UpdatedTime = uint64(time.Now().Unix())

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Orders, key, data)

	if err := trx.Commit(); nil != err {
		return err
	}

	messagebus.Send(eventSource, ExpressInfoUpdatedEvent{
		OrderCode: orderCode,
	})
	return nil
}

// Cancel - cancel an order still awaiting delivery
//
// valid only from Pending or Paid
func Cancel(caller account.Account, orderCode string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := []byte(orderCode)
	record, err := fetchForUpdate(trx, caller, key)
	if nil != err {
		trx.Abort()
		return err
	}

	oldStatus := record.Status
	if !oldStatus.IsCancellable() {
		trx.Abort()
		return fault.InvalidStatusTransition
	}

	record.Status = Cancelled
	record.UpdatedTime = uint64(time.Now().Unix())

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Orders, key, data)

	if err := globalData.statusIndex.Move(trx, oldStatus.Key(), Cancelled.Key(), key); nil != err {
		trx.Abort()
		return fault.StatusListFull
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("cancelled order: %q", orderCode)
	messagebus.Send(eventSource, CancelledEvent{
		OrderCode: orderCode,
	})
	return nil
}
