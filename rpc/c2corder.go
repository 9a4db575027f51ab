// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/c2corder"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/mode"
)

const (
	rateLimitC2COrder = 200
	rateBurstC2COrder = 100
)

// C2COrder - type for the RPC
type C2COrder struct {
	log     *logger.L
	limiter *rate.Limiter
}

// limit for list results
const maximumC2COrderList = 100

// C2COrderCreateArguments - arguments for creating a peer order
type C2COrderCreateArguments struct {
	Owner             account.Account    `json:"owner"`
	OrderCode         string             `json:"orderCode"`
	MemberCode        string             `json:"memberCode"`
	InstitutionCode   string             `json:"institutionCode"`
	Direction         c2corder.Direction `json:"direction"`
	TransactionAmount uint64             `json:"transactionAmount"`
	TotalAmount       uint64             `json:"totalAmount"`
}

// C2COrderCreateReply - result of creating a peer order
type C2COrderCreateReply struct {
	OrderCode string `json:"orderCode"`
}

// Create - store a new peer order
func (c *C2COrder) Create(arguments *C2COrderCreateArguments, reply *C2COrderCreateReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	err := c2corder.Create(
		arguments.Owner,
		arguments.OrderCode,
		arguments.MemberCode,
		arguments.InstitutionCode,
		arguments.Direction,
		arguments.TransactionAmount,
		arguments.TotalAmount,
	)
	if nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	return nil
}

// C2COrderStatusArguments - arguments for a status transition
type C2COrderStatusArguments struct {
	Owner     account.Account `json:"owner"`
	OrderCode string          `json:"orderCode"`
	Status    c2corder.Status `json:"status"`
}

// C2COrderStatusReply - the status after the transition
type C2COrderStatusReply struct {
	OrderCode string          `json:"orderCode"`
	Status    c2corder.Status `json:"status"`
}

// UpdateStatus - move a peer order along its lifecycle
func (c *C2COrder) UpdateStatus(arguments *C2COrderStatusArguments, reply *C2COrderStatusReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := c2corder.UpdateStatus(arguments.Owner, arguments.OrderCode, arguments.Status); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.Status = arguments.Status
	return nil
}

// C2COrderArguments - arguments naming one peer order
type C2COrderArguments struct {
	Owner     account.Account `json:"owner"`
	OrderCode string          `json:"orderCode"`
}

// Cancel - cancel an unsettled peer order
func (c *C2COrder) Cancel(arguments *C2COrderArguments, reply *C2COrderStatusReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := c2corder.Cancel(arguments.Owner, arguments.OrderCode); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.Status = c2corder.Cancelled
	return nil
}

// Complete - settle a delivered or notarizing peer order
func (c *C2COrder) Complete(arguments *C2COrderArguments, reply *C2COrderStatusReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := c2corder.Complete(arguments.Owner, arguments.OrderCode); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.Status = c2corder.Completed
	return nil
}

// C2COrderUpdateReply - generic acknowledgement
type C2COrderUpdateReply struct {
	OrderCode string `json:"orderCode"`
	OK        bool   `json:"ok"`
}

// Delete - remove a peer order and its index entries
func (c *C2COrder) Delete(arguments *C2COrderArguments, reply *C2COrderUpdateReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := c2corder.Delete(arguments.Owner, arguments.OrderCode); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.OK = true
	return nil
}

// C2COrderGetArguments - arguments for fetching one peer order
type C2COrderGetArguments struct {
	OrderCode string `json:"orderCode"`
}

// C2COrderGetReply - the full peer order record
type C2COrderGetReply struct {
	Order *c2corder.Order `json:"order"`
}

// Get - fetch one peer order record
func (c *C2COrder) Get(arguments *C2COrderGetArguments, reply *C2COrderGetReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	record, err := c2corder.Get(arguments.OrderCode)
	if nil != err {
		return err
	}
	reply.Order = record
	return nil
}

// C2COrderListArguments - exactly one selector must be supplied
type C2COrderListArguments struct {
	MemberCode      string           `json:"memberCode,omitempty"`
	InstitutionCode string           `json:"institutionCode,omitempty"`
	Status          *c2corder.Status `json:"status,omitempty"`
	Count           int              `json:"count"`
}

// C2COrderListReply - codes matching the selector
type C2COrderListReply struct {
	OrderCodes []string `json:"orderCodes"`
}

// List - peer order codes for a member, an institution or a status
func (c *C2COrder) List(arguments *C2COrderListArguments, reply *C2COrderListReply) error {

	if err := rateLimitN(c.limiter, arguments.Count, maximumC2COrderList); nil != err {
		return err
	}

	var codes []string
	var err error
	switch {
	case "" != arguments.MemberCode:
		codes, err = c2corder.ListForOwner(arguments.MemberCode)
	case "" != arguments.InstitutionCode:
		codes, err = c2corder.ListForInstitution(arguments.InstitutionCode)
	case nil != arguments.Status:
		codes, err = c2corder.ListForStatus(*arguments.Status)
	default:
		return fault.MissingParameters
	}
	if nil != err {
		return err
	}

	if len(codes) > arguments.Count {
		codes = codes[:arguments.Count]
	}
	reply.OrderCodes = codes
	return nil
}
