// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Get - fetch one c2c order by its code
func Get(orderCode string) (*Order, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	data := storage.Pool.C2COrders.Get([]byte(orderCode))
	if nil == data {
		return nil, fault.OrderNotFound
	}
	return Unpack(data)
}

// ListForOwner - codes of all c2c orders created for a member
func ListForOwner(memberCode string) ([]string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	return codesToStrings(globalData.ownerIndex.List([]byte(memberCode))), nil
}

// ListForInstitution - codes of all c2c orders at an institution
func ListForInstitution(institutionCode string) ([]string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	return codesToStrings(globalData.institutionIndex.List([]byte(institutionCode))), nil
}

// ListForStatus - codes of all c2c orders in one status bucket
func ListForStatus(status Status) ([]string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if !status.IsValid() {
		return nil, fault.InvalidStatus
	}
	return codesToStrings(globalData.statusIndex.List(status.Key())), nil
}

func codesToStrings(codes [][]byte) []string {
	result := make([]string, len(codes))
	for i, code := range codes {
		result[i] = string(code)
	}
	return result
}
