// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// Create - store a new token in an institution's catalogue
//
// the creator's holding of the token is recorded in the owner index
// alongside the institution index entry
func Create(
	caller account.Account,
	tokenCode string,
	institutionCode string,
	name string,
	category string,
	price uint64,
	direction Direction,
	stockQuantity uint32,
) error {
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
	if err := checkLength(name, maxNameLength); nil != err {
		return err
	}
	if err := checkLength(category, maxCategoryLength); nil != err {
		return err
	}
	if 0 == price {
		return fault.InvalidPrice
	}
	if direction >= maximumDirection {
		return fault.InvalidDirection
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(tokenCode, institutionCode)
	if trx.Has(storage.Pool.Tokens, key) {
		trx.Abort()
		return fault.TokenAlreadyExists
	}

	record := &Token{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		Name:            name,
		Category:        category,
		Price:           price,
		Direction:       direction,
		StockQuantity:   stockQuantity,
		SalesQuantity:   0,
		Status:          Available,
		CreatedTime:     uint64(time.Now().Unix()),
		Creator:         caller,
	}

	data, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Tokens, key, data)

	if err := globalData.institutionIndex.Insert(trx, []byte(institutionCode), []byte(tokenCode)); nil != err {
		trx.Abort()
		return fault.InstitutionListFull
	}
	if err := globalData.ownerIndex.Insert(trx, caller.Bytes(), ownerEntry(tokenCode, institutionCode)); nil != err {
		trx.Abort()
		return fault.OwnerListFull
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("created token: %q institution: %q", tokenCode, institutionCode)
	messagebus.Send(eventSource, CreatedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
		Creator:         caller,
	})
	return nil
}
