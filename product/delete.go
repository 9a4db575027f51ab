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

// Delete - remove a product and its institution index entry
func Delete(caller account.Account, productCode string, institutionCode string) error {
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

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(productCode, institutionCode)
	if _, err := fetchForUpdate(trx, caller, key); nil != err {
		trx.Abort()
		return err
	}

	globalData.institutionIndex.Remove(trx, []byte(institutionCode), []byte(productCode))
	trx.Delete(storage.Pool.Products, key)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("deleted product: %q institution: %q", productCode, institutionCode)
	messagebus.Send(eventSource, DeletedEvent{
		ProductCode:     productCode,
		InstitutionCode: institutionCode,
	})
	return nil
}
