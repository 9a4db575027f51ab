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

// Create - store a new order for a member
//
// the record and the three index inserts commit as one unit; any
// failure leaves the store unchanged
func Create(
	caller account.Account,
	orderCode string,
	memberCode string,
	institutionCode string,
	freight uint64,
	phone *string,
	email *string,
	address *string,
	items []Item,
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
	if err := checkOptionalLength(phone, maxPhoneLength); nil != err {
		return err
	}
	if err := checkOptionalLength(email, maxEmailLength); nil != err {
		return err
	}
	if err := checkOptionalLength(address, maxAddressLength); nil != err {
		return err
	}

	totalAmount, totalWeight, err := sumItems(items, freight)
	if nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := []byte(orderCode)
	if trx.Has(storage.Pool.Orders, key) {
		trx.Abort()
		return fault.OrderAlreadyExists
	}

	now := uint64(time.Now().Unix())
	record := &Order{
		OrderCode:       orderCode,
		MemberCode:      memberCode,
		InstitutionCode: institutionCode,
		Status:          Pending,
		CreatedTime:     now,
		UpdatedTime:     now,
		TotalAmount:     totalAmount,
		TotalWeight:     totalWeight,
		Freight:         freight,
		Contact: Contact{
			Phone:   phone,
			Email:   email,
			Address: address,
		},
		Items:   items,
		Creator: caller,
	}

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Orders, key, data)

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

	globalData.log.Infof("created order: %q member: %q", orderCode, memberCode)
	messagebus.Send(eventSource, CreatedEvent{
		OrderCode: orderCode,
		Creator:   caller,
	})
	return nil
}
