// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	EmptyOrderItems              = InvalidError("order items cannot be empty")
	InstitutionListFull          = CapacityError("institution index list is full")
	InsufficientStock            = InvalidError("insufficient stock")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidCount                 = InvalidError("invalid count")
	InvalidDirection             = InvalidError("invalid trade direction")
	InvalidItemQuantity          = InvalidError("item quantity must be positive")
	InvalidPrice                 = InvalidError("invalid price")
	InvalidProfitRatio           = InvalidError("invalid profit ratio")
	InvalidStatus                = InvalidError("invalid status")
	InvalidStatusTransition      = InvalidError("invalid status transition")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	ListFull                     = CapacityError("index list is full")
	MissingParameters            = LengthError("missing parameters")
	NotAuthorized                = AuthorizationError("not authorized")
	NotAvailable                 = ProcessError("not available while stopped")
	NotInitialised               = ProcessError("not initialised")
	OrderAlreadyExists           = ExistsError("order code already exists")
	OrderNotFound                = NotFoundError("order not found")
	OwnerListFull                = CapacityError("owner index list is full")
	ProductAlreadyExists         = ExistsError("product already exists")
	ProductNotFound              = NotFoundError("product not found")
	RateLimiting                 = ProcessError("rate limiting")
	StatusListFull               = CapacityError("status index list is full")
	StringTooLong                = LengthError("string exceeds maximum length")
	TokenAlreadyExists           = ExistsError("token already exists")
	TokenNotFound                = NotFoundError("token not found")
	TooManyAuthorizedGroups      = LengthError("too many authorized groups")
	TooManyDetailImages          = LengthError("too many detail images")
	TooManyOrderItems            = LengthError("too many order items")
	TransactionInUse             = ProcessError("transaction already in use")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrCapacity(e error) bool      { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
