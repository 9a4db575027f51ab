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

// Delete - remove a token, its institution entry and the creator's
// holding entry
func Delete(caller account.Account, tokenCode string, institutionCode string) error {
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

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(tokenCode, institutionCode)
	if _, err := fetchForUpdate(trx, caller, key); nil != err {
		trx.Abort()
		return err
	}

	globalData.institutionIndex.Remove(trx, []byte(institutionCode), []byte(tokenCode))
	globalData.ownerIndex.Remove(trx, caller.Bytes(), ownerEntry(tokenCode, institutionCode))
	trx.Delete(storage.Pool.Tokens, key)

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("deleted token: %q institution: %q", tokenCode, institutionCode)
	messagebus.Send(eventSource, DeletedEvent{
		TokenCode:       tokenCode,
		InstitutionCode: institutionCode,
	})
	return nil
}
