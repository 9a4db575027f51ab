// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"fmt"

	"github.com/marketmesh/marketd/fault"
)

// Direction - which side of the trade the member is on
type Direction uint8

// possible directions
const (
	Sell Direction = iota
	Buy  Direction = iota
	maximumDirection
)

// DirectionFromByte - convert the wire numeric form
func DirectionFromByte(b uint8) (Direction, error) {
	direction := Direction(b)
	if direction >= maximumDirection {
		return Sell, fault.InvalidDirection
	}
	return direction, nil
}

// String - convert a direction to its name
func (direction Direction) String() string {
	switch direction {
	case Sell:
		return "Sell"
	case Buy:
		return "Buy"
	default:
		return fmt.Sprintf("*unknown:%d*", uint8(direction))
	}
}

// MarshalText - convert a direction into JSON
func (direction Direction) MarshalText() ([]byte, error) {
	if direction >= maximumDirection {
		return nil, fault.InvalidDirection
	}
	return []byte(direction.String()), nil
}

// UnmarshalText - convert a direction name back from JSON
func (direction *Direction) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Sell":
		*direction = Sell
	case "Buy":
		*direction = Buy
	default:
		return fault.InvalidDirection
	}
	return nil
}
