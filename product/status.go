// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"fmt"

	"github.com/marketmesh/marketd/fault"
)

// Status - catalogue visibility of a product
type Status uint8

// possible status values
const (
	Available   Status = iota // listed
	Unavailable Status = iota // withdrawn
	maximumStatus
)

// StatusFromByte - convert the wire numeric form
func StatusFromByte(b uint8) (Status, error) {
	status := Status(b)
	if !status.IsValid() {
		return Available, fault.InvalidStatus
	}
	return status, nil
}

// IsValid - status is one of the enumerated values
func (status Status) IsValid() bool {
	return status < maximumStatus
}

// String - convert a status to its name
func (status Status) String() string {
	switch status {
	case Available:
		return "Available"
	case Unavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("*unknown:%d*", uint8(status))
	}
}

// MarshalText - convert a status into JSON
func (status Status) MarshalText() ([]byte, error) {
	if !status.IsValid() {
		return nil, fault.InvalidStatus
	}
	return []byte(status.String()), nil
}

// UnmarshalText - convert a status name back from JSON
func (status *Status) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Available":
		*status = Available
	case "Unavailable":
		*status = Unavailable
	default:
		return fault.InvalidStatus
	}
	return nil
}
