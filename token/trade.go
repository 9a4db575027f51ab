// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"math"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// Trade - move stock through a token in its listed direction
//
// deliberately not creator-gated: anyone can trade.  a sell token
// drains stock into sales; a buy token accumulates stock and records
// the trader as a holder.  a withdrawn token is reported as not found
// rather than revealing its existence
func Trade(trader account.Account, tokenCode string, institutionCode string, quantity uint32) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := checkLength(tokenCode, maxCodeLength); nil != err {
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

	key := storageKey(tokenCode, institutionCode)
	data := trx.Get(storage.Pool.Tokens, key)
	if nil == data {
		trx.Abort()
		return fault.TokenNotFound
	}
	record, err := Unpack(data)
	if nil != err {
		trx.Abort()
		return err
	}

	if Available != record.Status {
		trx.Abort()
		return fault.TokenNotFound
	}

	switch record.Direction {
	case Sell:
		if quantity > record.StockQuantity {
			trx.Abort()
			return fault.InsufficientStock
		}
		record.StockQuantity -= quantity
		record.SalesQuantity = saturatingAdd(record.SalesQuantity, quantity)

	case Buy:
		record.StockQuantity = saturatingAdd(record.StockQuantity, quantity)
		// record the trader as a holder, no-op if already held
		if err := globalData.ownerIndex.Insert(trx, trader.Bytes(), ownerEntry(tokenCode, institutionCode)); nil != err {
			trx.Abort()
			return fault.OwnerListFull
		}

	default:
		trx.Abort()
		return fault.InvalidDirection
	}

	packed, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Tokens, key, packed)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("traded token: %q institution: %q quantity: %d", tokenCode, institutionCode, quantity)
	messagebus.Send(eventSource, TradedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		Trader:          trader,
		Quantity:        quantity,
	})
	return nil
}

// stock and sales counters clamp at the maximum rather than wrapping
func saturatingAdd(a uint32, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
