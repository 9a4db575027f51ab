// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"github.com/marketmesh/marketd/account"
)

// bus origin tag for this module
const eventSource = "order"

// CreatedEvent - a new order was stored
type CreatedEvent struct {
	OrderCode string
	Creator   account.Account
}

// StatusUpdatedEvent - an order moved to a new status
type StatusUpdatedEvent struct {
	OrderCode string
	Status    Status
}

// ExpressInfoUpdatedEvent - shipping details were set
type ExpressInfoUpdatedEvent struct {
	OrderCode string
}

// CancelledEvent - an order was cancelled by its creator
type CancelledEvent struct {
	OrderCode string
}

// DeletedEvent - an order and its index entries were removed
type DeletedEvent struct {
	OrderCode string
}
