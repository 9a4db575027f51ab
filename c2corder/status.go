// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"fmt"
	"strings"

	"github.com/marketmesh/marketd/fault"
)

// Status - c2c order status enumeration
//
// note the numeric codes differ from package order: Notarizing takes
// slot 3 and pushes Cancelled/Completed up
type Status uint8

// possible status values
const (
	Pending    Status = iota // awaiting payment
	Paid       Status = iota
	Delivered  Status = iota
	Notarizing Status = iota
	Cancelled  Status = iota
	Completed  Status = iota
	maximumStatus
)

func toString(status Status) ([]byte, error) {
	switch status {
	case Pending:
		return []byte("Pending"), nil
	case Paid:
		return []byte("Paid"), nil
	case Delivered:
		return []byte("Delivered"), nil
	case Notarizing:
		return []byte("Notarizing"), nil
	case Cancelled:
		return []byte("Cancelled"), nil
	case Completed:
		return []byte("Completed"), nil
	default:
		return []byte{}, fault.InvalidStatus
	}
}

func fromString(in string) (Status, error) {
	switch strings.ToLower(in) {
	case "pending":
		return Pending, nil
	case "paid":
		return Paid, nil
	case "delivered":
		return Delivered, nil
	case "notarizing":
		return Notarizing, nil
	case "cancelled":
		return Cancelled, nil
	case "completed":
		return Completed, nil
	default:
		return Pending, fault.InvalidStatus
	}
}

// StatusFromByte - convert the wire numeric form
func StatusFromByte(b uint8) (Status, error) {
	status := Status(b)
	if !status.IsValid() {
		return Pending, fault.InvalidStatus
	}
	return status, nil
}

// IsValid - status is one of the enumerated values
func (status Status) IsValid() bool {
	return status < maximumStatus
}

// String - convert a status to its name
func (status Status) String() string {
	s, err := toString(status)
	if nil != err {
		return fmt.Sprintf("*unknown:%d*", status)
	}
	return string(s)
}

// GoString - status enum value and name, for debugging
func (status Status) GoString() string {
	return fmt.Sprintf("<Status#%d:%q>", uint8(status), status.String())
}

// MarshalText - convert a status into JSON
func (status Status) MarshalText() ([]byte, error) {
	return toString(status)
}

// UnmarshalText - convert a status name back from JSON
func (status *Status) UnmarshalText(s []byte) error {
	parsed, err := fromString(string(s))
	if nil != err {
		return err
	}
	*status = parsed
	return nil
}

// Key - the status index bucket key
func (status Status) Key() []byte {
	return []byte{uint8(status)}
}

// CanTransitionTo - legal moves of the c2c state machine
func (status Status) CanTransitionTo(next Status) bool {
	switch status {
	case Pending:
		return Paid == next || Cancelled == next || Notarizing == next
	case Paid:
		return Delivered == next || Cancelled == next || Notarizing == next
	case Delivered:
		return Completed == next || Notarizing == next
	case Notarizing:
		return Completed == next || Cancelled == next
	default:
		return false
	}
}

// IsCancellable - cancel is restricted to the pre-delivery statuses
func (status Status) IsCancellable() bool {
	return Pending == status || Paid == status
}

// IsCompletable - complete requires delivery or notarisation
func (status Status) IsCompletable() bool {
	return Delivered == status || Notarizing == status
}
