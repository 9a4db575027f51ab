// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Get - fetch one product by its composite key
func Get(productCode string, institutionCode string) (*Product, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	data := storage.Pool.Products.Get(storageKey(productCode, institutionCode))
	if nil == data {
		return nil, fault.ProductNotFound
	}
	return Unpack(data)
}

// ListForInstitution - codes of all products in a catalogue
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
