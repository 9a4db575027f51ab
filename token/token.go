// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/json"
	"fmt"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
)

// field ceilings
const (
	maxCodeLength     = 64
	maxNameLength     = 128
	maxCategoryLength = 64
)

// Status - catalogue visibility of a token
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

// Direction - which way the token trades
type Direction uint8

// possible directions
const (
	Sell Direction = iota // stock flows out to buyers
	Buy  Direction = iota // stock flows in from sellers
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

// Token - the primary token record
type Token struct {
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           uint64          `json:"price"`
	Direction       Direction       `json:"direction"`
	StockQuantity   uint32          `json:"stockQuantity"`
	SalesQuantity   uint32          `json:"salesQuantity"`
	Status          Status          `json:"status"`
	CreatedTime     uint64          `json:"createdTime"`
	Creator         account.Account `json:"creator"`
}

// Pack - serialise the record for storage
func (token *Token) Pack() ([]byte, error) {
	return json.Marshal(token)
}

// Unpack - deserialise a stored record
func Unpack(data []byte) (*Token, error) {
	token := &Token{}
	if err := json.Unmarshal(data, token); nil != err {
		return nil, err
	}
	return token, nil
}

// storageKey - the composite (code, institution) primary key
func storageKey(tokenCode string, institutionCode string) []byte {
	return codelist.Pair([]byte(tokenCode), []byte(institutionCode))
}

// ownerEntry - the (code, institution) pair stored in an owner bucket
func ownerEntry(tokenCode string, institutionCode string) []byte {
	return codelist.Pair([]byte(tokenCode), []byte(institutionCode))
}

func checkLength(s string, limit int) error {
	if len(s) > limit {
		return fault.StringTooLong
	}
	return nil
}
