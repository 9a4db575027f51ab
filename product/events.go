// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"github.com/marketmesh/marketd/account"
)

const eventSource = "product"

// CreatedEvent - a new product was stored
type CreatedEvent struct {
	ProductCode     string
	InstitutionCode string
	Creator         account.Account
}

// InfoUpdatedEvent - catalogue fields were changed
type InfoUpdatedEvent struct {
	ProductCode     string
	InstitutionCode string
}

// StatusUpdatedEvent - a product was listed or withdrawn
type StatusUpdatedEvent struct {
	ProductCode     string
	InstitutionCode string
	Status          Status
}

// StockUpdatedEvent - the stock counter was reset by the creator
type StockUpdatedEvent struct {
	ProductCode     string
	InstitutionCode string
	StockQuantity   uint32
}

// DeletedEvent - a product and its index entry were removed
type DeletedEvent struct {
	ProductCode     string
	InstitutionCode string
}

// PurchasedEvent - stock sold to a buyer
type PurchasedEvent struct {
	ProductCode     string
	InstitutionCode string
	Buyer           account.Account
	Quantity        uint32
}
