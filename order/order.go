// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"encoding/json"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
)

// field length ceilings
const (
	maxCodeLength    = 64
	maxPhoneLength   = 32
	maxEmailLength   = 128
	maxAddressLength = 512
	maxExpressLength = 64
	maxItems         = 100
)

// Item - one priced line of an order
type Item struct {
	ProductCode  string `json:"productCode"`
	Quantity     uint32 `json:"quantity"`
	PricePerUnit uint64 `json:"pricePerUnit"`
	Weight       uint32 `json:"weight"`
}

// Contact - optional delivery contact fields
type Contact struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Order - the primary order record
//
// TotalAmount and TotalWeight are derived sums over Items plus
// Freight, fixed at creation; Creator never changes
type Order struct {
	OrderCode       string          `json:"orderCode"`
	MemberCode      string          `json:"memberCode"`
	InstitutionCode string          `json:"institutionCode"`
	Status          Status          `json:"status"`
	CreatedTime     uint64          `json:"createdTime"`
	UpdatedTime     uint64          `json:"updatedTime"`
	TotalAmount     uint64          `json:"totalAmount"`
	TotalWeight     uint64          `json:"totalWeight"`
	Freight         uint64          `json:"freight"`
	Contact         Contact         `json:"contact"`
	Items           []Item          `json:"items"`
	ExpressCompany  string          `json:"expressCompany"`
	ExpressNumber   string          `json:"expressNumber"`
	Creator         account.Account `json:"creator"`
}

// Pack - serialise the record for storage
func (order *Order) Pack() ([]byte, error) {
	return json.Marshal(order)
}

// Unpack - deserialise a stored record
func Unpack(data []byte) (*Order, error) {
	order := &Order{}
	if err := json.Unmarshal(data, order); nil != err {
		return nil, err
	}
	return order, nil
}

// enforce a bounded string
func checkLength(s string, limit int) error {
	if len(s) > limit {
		return fault.StringTooLong
	}
	return nil
}

// enforce an optional bounded string
func checkOptionalLength(s *string, limit int) error {
	if nil == s {
		return nil
	}
	return checkLength(*s, limit)
}

// validate the item list and compute the derived totals
func sumItems(items []Item, freight uint64) (uint64, uint64, error) {
	if 0 == len(items) {
		return 0, 0, fault.EmptyOrderItems
	}
	if len(items) > maxItems {
		return 0, 0, fault.TooManyOrderItems
	}

	totalAmount := freight
	totalWeight := uint64(0)
	for _, item := range items {
		if err := checkLength(item.ProductCode, maxCodeLength); nil != err {
			return 0, 0, err
		}
		if 0 == item.Quantity {
			return 0, 0, fault.InvalidItemQuantity
		}
		totalAmount += item.PricePerUnit * uint64(item.Quantity)
		totalWeight += uint64(item.Weight) * uint64(item.Quantity)
	}
	return totalAmount, totalWeight, nil
}
