// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - caller identities
//
// An account is the 32 byte public key of the key pair the host used
// to verify the call signature.  The core only ever compares accounts
// for equality; signature checking stays with the host dispatcher.
package account

import (
	"github.com/mr-tron/base58"

	"github.com/marketmesh/marketd/fault"
)

// Size - length of the packed account
const Size = 32

// Account - the caller identity
type Account [Size]byte

// AccountFromBase58 - decode the text form of an account
func AccountFromBase58(s string) (Account, error) {
	var account Account
	decoded, err := base58.Decode(s)
	if nil != err {
		return account, fault.CannotDecodeAccount
	}
	if Size != len(decoded) {
		return account, fault.CannotDecodeAccount
	}
	copy(account[:], decoded)
	return account, nil
}

// Bytes - byte form, used to compose storage keys
func (account Account) Bytes() []byte {
	return account[:]
}

// String - base58 text form
func (account Account) String() string {
	return base58.Encode(account[:])
}

// IsZero - true for the all zero account
func (account Account) IsZero() bool {
	for _, b := range account {
		if 0 != b {
			return false
		}
	}
	return true
}

// MarshalText - convert an account into JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 text into an account from JSON
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}
