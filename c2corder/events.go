// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"github.com/marketmesh/marketd/account"
)

const eventSource = "c2corder"

// CreatedEvent - a new c2c order was stored
type CreatedEvent struct {
	OrderCode string
	Creator   account.Account
}

// StatusUpdatedEvent - a c2c order moved to a new status
type StatusUpdatedEvent struct {
	OrderCode string
	Status    Status
}

// CancelledEvent - a c2c order was cancelled by its creator
type CancelledEvent struct {
	OrderCode string
}

// CompletedEvent - a c2c order reached Completed
type CompletedEvent struct {
	OrderCode string
}

// DeletedEvent - a c2c order and its index entries were removed
type DeletedEvent struct {
	OrderCode string
}
