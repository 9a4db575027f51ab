// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"encoding/json"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
)

// field ceilings
const (
	maxCodeLength        = 64
	maxNameLength        = 128
	maxCategoryLength    = 64
	maxBrandLength       = 64
	maxGroupLength       = 64
	maxAuthorizedGroups  = 10
	maxDescriptionLength = 1024
	maxImageURLLength    = 256
	maxDetailImages      = 10
)

// profit ratio is parts per billion
const maxProfitRatio = 1000000000

// Product - the primary product record
type Product struct {
	ProductCode      string          `json:"productCode"`
	InstitutionCode  string          `json:"institutionCode"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	AuthorizedGroups []string        `json:"authorizedGroups"`
	OriginalPrice    uint64          `json:"originalPrice"`
	CurrentPrice     uint64          `json:"currentPrice"`
	Description      string          `json:"description"`
	MainImage        string          `json:"mainImage"`
	DetailImages     []string        `json:"detailImages"`
	StockQuantity    uint32          `json:"stockQuantity"`
	SalesQuantity    uint32          `json:"salesQuantity"`
	Weight           uint32          `json:"weight"`
	Status           Status          `json:"status"`
	ProfitRatio      uint32          `json:"profitRatio"`
	CreatedTime      uint64          `json:"createdTime"`
	Creator          account.Account `json:"creator"`
}

// Pack - serialise the record for storage
func (product *Product) Pack() ([]byte, error) {
	return json.Marshal(product)
}

// Unpack - deserialise a stored record
func Unpack(data []byte) (*Product, error) {
	product := &Product{}
	if err := json.Unmarshal(data, product); nil != err {
		return nil, err
	}
	return product, nil
}

// storageKey - the composite (code, institution) primary key
func storageKey(productCode string, institutionCode string) []byte {
	return codelist.Pair([]byte(productCode), []byte(institutionCode))
}

func checkLength(s string, limit int) error {
	if len(s) > limit {
		return fault.StringTooLong
	}
	return nil
}
