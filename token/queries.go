// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Holding - one (token, institution) pair from an owner's list
type Holding struct {
	TokenCode       string `json:"tokenCode"`
	InstitutionCode string `json:"institutionCode"`
}

// Get - fetch one token by its composite key
func Get(tokenCode string, institutionCode string) (*Token, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	data := storage.Pool.Tokens.Get(storageKey(tokenCode, institutionCode))
	if nil == data {
		return nil, fault.TokenNotFound
	}
	return Unpack(data)
}

// ListForInstitution - codes of all tokens in a catalogue
func ListForInstitution(institutionCode string) ([]string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	codes := globalData.institutionIndex.List([]byte(institutionCode))
	result := make([]string, len(codes))
	for i, code := range codes {
		result[i] = string(code)
	}
	return result, nil
}

// ListForOwner - all tokens an account holds or created
func ListForOwner(owner account.Account) ([]Holding, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	entries := globalData.ownerIndex.List(owner.Bytes())
	result := make([]Holding, len(entries))
	for i, entry := range entries {
		code, institution := codelist.SplitPair(entry)
		result[i] = Holding{
			TokenCode:       string(code),
			InstitutionCode: string(institution),
		}
	}
	return result, nil
}
