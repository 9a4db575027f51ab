// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// UpdateData - optional catalogue field changes, nil leaves a field alone
type UpdateData struct {
	Name          *string
	Category      *string
	Brand         *string
	OriginalPrice *uint64
	CurrentPrice  *uint64
	Description   *string
	MainImage     *string
	Weight        *uint32
	ProfitRatio   *uint32
}

func fetchForUpdate(trx storage.Transaction, caller account.Account, key []byte) (*Product, error) {
	data := trx.Get(storage.Pool.Products, key)
	if nil == data {
		return nil, fault.ProductNotFound
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
func mutate(caller account.Account, productCode string, institutionCode string, change func(*Product) error) error {
	if err := checkLength(productCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(institutionCode, maxCodeLength); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(productCode, institutionCode)
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
	trx.Put(storage.Pool.Products, key, data)

	return trx.Commit()
}

// UpdateInfo - change catalogue fields of an existing product
//
// the price relation is revalidated against the merged record
func UpdateInfo(caller account.Account, productCode string, institutionCode string, updates UpdateData) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	err := mutate(caller, productCode, institutionCode, func(record *Product) error {
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
		if nil != updates.Brand {
			if err := checkLength(*updates.Brand, maxBrandLength); nil != err {
				return err
			}
			record.Brand = *updates.Brand
		}
		if nil != updates.OriginalPrice {
			record.OriginalPrice = *updates.OriginalPrice
		}
		if nil != updates.CurrentPrice {
			record.CurrentPrice = *updates.CurrentPrice
		}
		if record.CurrentPrice > record.OriginalPrice {
			return fault.InvalidPrice
		}
		if nil != updates.Description {
			if err := checkLength(*updates.Description, maxDescriptionLength); nil != err {
				return err
			}
			record.Description = *updates.Description
		}
		if nil != updates.MainImage {
			if err := checkLength(*updates.MainImage, maxImageURLLength); nil != err {
				return err
			}
			record.MainImage = *updates.MainImage
		}
		if nil != updates.Weight {
			record.Weight = *updates.Weight
		}
		if nil != updates.ProfitRatio {
			if *updates.ProfitRatio > maxProfitRatio {
				return fault.InvalidProfitRatio
			}
			record.ProfitRatio = *updates.ProfitRatio
		}
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, InfoUpdatedEvent{
		ProductCode:     productCode,
		InstitutionCode: institutionCode,
	})
	return nil
}

// UpdateStatus - list or withdraw a product
func UpdateStatus(caller account.Account, productCode string, institutionCode string, newStatus Status) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !newStatus.IsValid() {
		return fault.InvalidStatus
	}

	err := mutate(caller, productCode, institutionCode, func(record *Product) error {
		record.Status = newStatus
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, StatusUpdatedEvent{
		ProductCode:     productCode,
		InstitutionCode: institutionCode,
		Status:          newStatus,
	})
	return nil
}

// UpdateStock - reset the stock counter
func UpdateStock(caller account.Account, productCode string, institutionCode string, newStock uint32) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	err := mutate(caller, productCode, institutionCode, func(record *Product) error {
		record.StockQuantity = newStock
		return nil
	})
	if nil != err {
		return err
	}

	messagebus.Send(eventSource, StockUpdatedEvent{
		ProductCode:     productCode,
		InstitutionCode: institutionCode,
		StockQuantity:   newStock,
	})
	return nil
}
