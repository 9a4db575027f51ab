// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// Delete - remove a c2c order and every one of its index entries
func Delete(caller account.Account, orderCode string) error {
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

	globalData.ownerIndex.Remove(trx, []byte(record.MemberCode), key)
	globalData.institutionIndex.Remove(trx, []byte(record.InstitutionCode), key)
	globalData.statusIndex.Remove(trx, record.Status.Key(), key)
	trx.Delete(storage.Pool.C2COrders, key)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("deleted c2c order: %q", orderCode)
	messagebus.Send(eventSource, DeletedEvent{
		OrderCode: orderCode,
	})
	return nil
}
