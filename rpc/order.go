// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/mode"
	"github.com/marketmesh/marketd/order"
)

const (
	rateLimitOrder = 200
	rateBurstOrder = 100
)

// Order - type for the RPC
type Order struct {
	log     *logger.L
	limiter *rate.Limiter
}

// limit for list results
const maximumOrderList = 100

// OrderCreateArguments - arguments for creating an order
type OrderCreateArguments struct {
	Owner           account.Account `json:"owner"`
	OrderCode       string          `json:"orderCode"`
	MemberCode      string          `json:"memberCode"`
	InstitutionCode string          `json:"institutionCode"`
	Freight         uint64          `json:"freight"`
	Phone           *string         `json:"phone,omitempty"`
	Email           *string         `json:"email,omitempty"`
	Address         *string         `json:"address,omitempty"`
	Items           []order.Item    `json:"items"`
}

// OrderCreateReply - result of creating an order
type OrderCreateReply struct {
	OrderCode string `json:"orderCode"`
}

// Create - store a new order
func (o *Order) Create(arguments *OrderCreateArguments, reply *OrderCreateReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	err := order.Create(
		arguments.Owner,
		arguments.OrderCode,
		arguments.MemberCode,
		arguments.InstitutionCode,
		arguments.Freight,
		arguments.Phone,
		arguments.Email,
		arguments.Address,
		arguments.Items,
	)
	if nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	return nil
}

// OrderStatusArguments - arguments for a status transition
type OrderStatusArguments struct {
	Owner     account.Account `json:"owner"`
	OrderCode string          `json:"orderCode"`
	Status    order.Status    `json:"status"`
}

// OrderStatusReply - the status after the transition
type OrderStatusReply struct {
	OrderCode string       `json:"orderCode"`
	Status    order.Status `json:"status"`
}

// UpdateStatus - move an order along its lifecycle
func (o *Order) UpdateStatus(arguments *OrderStatusArguments, reply *OrderStatusReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := order.UpdateStatus(arguments.Owner, arguments.OrderCode, arguments.Status); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.Status = arguments.Status
	return nil
}

// OrderExpressArguments - arguments for attaching shipping details
type OrderExpressArguments struct {
	Owner          account.Account `json:"owner"`
	OrderCode      string          `json:"orderCode"`
	ExpressCompany string          `json:"expressCompany"`
	ExpressNumber  string          `json:"expressNumber"`
}

// OrderUpdateReply - generic acknowledgement
type OrderUpdateReply struct {
	OrderCode string `json:"orderCode"`
	OK        bool   `json:"ok"`
}

// UpdateExpressInfo - attach shipping details to an order
func (o *Order) UpdateExpressInfo(arguments *OrderExpressArguments, reply *OrderUpdateReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := order.UpdateExpressInfo(
		arguments.Owner,
		arguments.OrderCode,
		arguments.ExpressCompany,
		arguments.ExpressNumber,
	)
	if nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.OK = true
	return nil
}

// OrderArguments - arguments naming one order
type OrderArguments struct {
	Owner     account.Account `json:"owner"`
	OrderCode string          `json:"orderCode"`
}

// Cancel - cancel an undelivered order
func (o *Order) Cancel(arguments *OrderArguments, reply *OrderStatusReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := order.Cancel(arguments.Owner, arguments.OrderCode); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.Status = order.Cancelled
	return nil
}

// Delete - remove an order and its index entries
func (o *Order) Delete(arguments *OrderArguments, reply *OrderUpdateReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := order.Delete(arguments.Owner, arguments.OrderCode); nil != err {
		return err
	}

	reply.OrderCode = arguments.OrderCode
	reply.OK = true
	return nil
}

// OrderGetArguments - arguments for fetching one order
type OrderGetArguments struct {
	OrderCode string `json:"orderCode"`
}

// OrderGetReply - the full order record
type OrderGetReply struct {
	Order *order.Order `json:"order"`
}

// Get - fetch one order record
func (o *Order) Get(arguments *OrderGetArguments, reply *OrderGetReply) error {

	if err := rateLimit(o.limiter); nil != err {
		return err
	}

	record, err := order.Get(arguments.OrderCode)
	if nil != err {
		return err
	}
	reply.Order = record
	return nil
}

// OrderListArguments - exactly one selector must be supplied
type OrderListArguments struct {
	MemberCode      string        `json:"memberCode,omitempty"`
	InstitutionCode string        `json:"institutionCode,omitempty"`
	Status          *order.Status `json:"status,omitempty"`
	Count           int           `json:"count"`
}

// OrderListReply - codes matching the selector
type OrderListReply struct {
	OrderCodes []string `json:"orderCodes"`
}

// List - order codes for a member, an institution or a status
func (o *Order) List(arguments *OrderListArguments, reply *OrderListReply) error {

	if err := rateLimitN(o.limiter, arguments.Count, maximumOrderList); nil != err {
		return err
	}

	var codes []string
	var err error
	switch {
	case "" != arguments.MemberCode:
		codes, err = order.ListForOwner(arguments.MemberCode)
	case "" != arguments.InstitutionCode:
		codes, err = order.ListForInstitution(arguments.InstitutionCode)
	case nil != arguments.Status:
		codes, err = order.ListForStatus(*arguments.Status)
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
