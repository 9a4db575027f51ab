// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"encoding/json"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
)

const maxCodeLength = 64

// Order - the primary c2c order record
type Order struct {
	OrderCode         string          `json:"orderCode"`
	MemberCode        string          `json:"memberCode"`
	InstitutionCode   string          `json:"institutionCode"`
	Status            Status          `json:"status"`
	Direction         Direction       `json:"direction"`
	CreatedTime       uint64          `json:"createdTime"`
	UpdatedTime       uint64          `json:"updatedTime"`
	TransactionAmount uint64          `json:"transactionAmount"`
	TotalAmount       uint64          `json:"totalAmount"`
	Creator           account.Account `json:"creator"`
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

func checkLength(s string, limit int) error {
	if len(s) > limit {
		return fault.StringTooLong
	}
	return nil
}
