// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// UpdateData - optional catalogue field changes, nil leaves a field alone
type UpdateData struct {
	Name      *string
	Category  *string
	Direction *Direction
}

func fetchForUpdate(trx storage.Transaction, caller account.Account, key []byte) (*Token, error) {
	data := trx.Get(storage.Pool.Tokens, key)
	if nil == data {
		return nil, fault.TokenNotFound
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

// apply a mutation to a record and store the result in one commit
func mutate(caller account.Account, tokenCode string, institutionCode string, change func(*Token) error) error {
	if err := checkLength(tokenCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(institutionCode, maxCodeLength); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(tokenCode, institutionCode)
	record, err := fetchForUpdate(trx, caller, key)
	if nil != err {
		trx.Abort()
		return err
	}

	if err := change(record); nil != err {
		trx.Abort()
		return err
	}

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Tokens, key, data)

	return trx.Commit()
}

// UpdateInfo - change catalogue fields of an existing token
func UpdateInfo(caller account.Account, tokenCode string, institutionCode string, updates UpdateData) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	err := mutate(caller, tokenCode, institutionCode, func(record *Token) error {
		if nil != updates.Name {
			if err := checkLength(*updates.Name, maxNameLength); nil != err {
				return err
			}
			record.Name = *updates.Name
		}
		if nil != updates.Category {
			if err := checkLength(*updates.Category, maxCategoryLength); nil != err {
				return err
			}
			record.Category = *updates.Category
		}
		if nil != updates.Direction {
			if *updates.Direction >= maximumDirection {
				return fault.InvalidDirection
			}
			record.Direction = *updates.Direction
		}
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, InfoUpdatedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
	})
	return nil
}

// UpdateStatus - list or withdraw a token
func UpdateStatus(caller account.Account, tokenCode string, institutionCode string, newStatus Status) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !newStatus.IsValid() {
		return fault.InvalidStatus
	}

	err := mutate(caller, tokenCode, institutionCode, func(record *Token) error {
		record.Status = newStatus
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, StatusUpdatedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		Status:          newStatus,
	})
	return nil
}

// UpdatePrice - change the unit price, zero is rejected
func UpdatePrice(caller account.Account, tokenCode string, institutionCode string, newPrice uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if 0 == newPrice {
		return fault.InvalidPrice
	}

	err := mutate(caller, tokenCode, institutionCode, func(record *Token) error {
		record.Price = newPrice
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, PriceUpdatedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		Price:           newPrice,
	})
	return nil
}

// UpdateStock - reset the stock counter
func UpdateStock(caller account.Account, tokenCode string, institutionCode string, newStock uint32) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	err := mutate(caller, tokenCode, institutionCode, func(record *Token) error {
		record.StockQuantity = newStock
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, StockUpdatedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		StockQuantity:   newStock,
	})
	return nil
}
