// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"math"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// Purchase - sell stock to any caller
//
// deliberately not creator-gated: the marketplace is open.  A
// withdrawn product is reported as not found rather than revealing
// its existence
func Purchase(buyer account.Account, productCode string, institutionCode string, quantity uint32) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(productCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(institutionCode, maxCodeLength); nil != err {
		return err
	}
	if 0 == quantity {
		return fault.InvalidCount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(productCode, institutionCode)
	data := trx.Get(storage.Pool.Products, key)
	if nil == data {
		trx.Abort()
		return fault.ProductNotFound
	}
	record, err := Unpack(data)
	if nil != err {
		trx.Abort()
		return err
	}

	if Available != record.Status {
		trx.Abort()
		return fault.ProductNotFound
	}
	if quantity > record.StockQuantity {
		trx.Abort()
		return fault.InsufficientStock
	}

	record.StockQuantity -= quantity
	record.SalesQuantity = saturatingAdd(record.SalesQuantity, quantity)

	packed, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Products, key, packed)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("purchased product: %q institution: %q quantity: %d", productCode, institutionCode, quantity)
	messagebus.Send(eventSource, PurchasedEvent{
		ProductCode:     productCode,
		InstitutionCode: institutionCode,
		Buyer:           buyer,
		Quantity:        quantity,
	})
	return nil
}

// sales counters clamp at the maximum rather than wrapping
func saturatingAdd(a uint32, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
