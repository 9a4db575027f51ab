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

// Create - store a new c2c order
//
// transactionAmount must be positive and totalAmount must cover it
func Create(
	caller account.Account,
	orderCode string,
	memberCode string,
	institutionCode string,
	direction Direction,
	transactionAmount uint64,
	totalAmount uint64,
) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if err := checkLength(orderCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(memberCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(institutionCode, maxCodeLength); nil != err {
		return err
	}
	if direction >= maximumDirection {
		return fault.InvalidDirection
	}
	if 0 == transactionAmount {
		return fault.InvalidAmount
	}
	if totalAmount < transactionAmount {
		return fault.InvalidAmount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := []byte(orderCode)
	if trx.Has(storage.Pool.C2COrders, key) {
		trx.Abort()
		return fault.OrderAlreadyExists
	}

	now := uint64(time.Now().Unix())
	record := &Order{
		OrderCode:         orderCode,
		MemberCode:        memberCode,
		InstitutionCode:   institutionCode,
		Status:            Pending,
		Direction:         direction,
		CreatedTime:       now,
		UpdatedTime:       now,
		TransactionAmount: transactionAmount,
		TotalAmount:       totalAmount,
		Creator:           caller,
	}

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.C2COrders, key, data)

	if err := globalData.ownerIndex.Insert(trx, []byte(memberCode), key); nil != err {
		trx.Abort()
		return fault.OwnerListFull
	}
	if err := globalData.institutionIndex.Insert(trx, []byte(institutionCode), key); nil != err {
		trx.Abort()
		return fault.InstitutionListFull
	}
	if err := globalData.statusIndex.Insert(trx, Pending.Key(), key); nil != err {
		trx.Abort()
		return fault.StatusListFull
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("created c2c order: %q member: %q", orderCode, memberCode)
	messagebus.Send(eventSource, CreatedEvent{
		OrderCode: orderCode,
		Creator:   caller,
	})
	return nil
}
