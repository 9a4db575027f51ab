// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/marketmesh/marketd/account"
)

const eventSource = "token"

// CreatedEvent - a new token was stored
type CreatedEvent struct {
	TokenCode       string
	InstitutionCode string
	Creator         account.Account
}

// InfoUpdatedEvent - catalogue fields were changed
type InfoUpdatedEvent struct {
	TokenCode       string
	InstitutionCode string
}

// StatusUpdatedEvent - a token was listed or withdrawn
type StatusUpdatedEvent struct {
	TokenCode       string
	InstitutionCode string
	Status          Status
}

// PriceUpdatedEvent - the price was changed by the creator
type PriceUpdatedEvent struct {
	TokenCode       string
	InstitutionCode string
	Price           uint64
}

// StockUpdatedEvent - the stock counter was reset by the creator
type StockUpdatedEvent struct {
	TokenCode       string
	InstitutionCode string
	StockQuantity   uint32
}

// DeletedEvent - a token and its index entries were removed
type DeletedEvent struct {
	TokenCode       string
	InstitutionCode string
}

// TradedEvent - stock moved through a trade
type TradedEvent struct {
	TokenCode       string
	InstitutionCode string
	Trader          account.Account
	Quantity        uint32
}
