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
	"github.com/marketmesh/marketd/product"
)

const (
	rateLimitProduct = 200
	rateBurstProduct = 100
)

// Product - type for the RPC
type Product struct {
	log     *logger.L
	limiter *rate.Limiter
}

// limit for list results
const maximumProductList = 100

// ProductCreateArguments - full field set for a new product
type ProductCreateArguments struct {
	Owner account.Account `json:"owner"`
	product.CreateData
}

// ProductCreateReply - result of creating a product
type ProductCreateReply struct {
	ProductCode     string `json:"productCode"`
	InstitutionCode string `json:"institutionCode"`
}

// Create - store a new product
func (p *Product) Create(arguments *ProductCreateArguments, reply *ProductCreateReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	if err := product.Create(arguments.Owner, arguments.CreateData); nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.InstitutionCode = arguments.InstitutionCode
	return nil
}

// ProductUpdateArguments - optional field changes for a product
type ProductUpdateArguments struct {
	Owner           account.Account `json:"owner"`
	ProductCode     string          `json:"productCode"`
	InstitutionCode string          `json:"institutionCode"`
	product.UpdateData
}

// ProductUpdateReply - generic acknowledgement
type ProductUpdateReply struct {
	ProductCode     string `json:"productCode"`
	InstitutionCode string `json:"institutionCode"`
	OK              bool   `json:"ok"`
}

// UpdateInfo - change catalogue fields of a product
func (p *Product) UpdateInfo(arguments *ProductUpdateArguments, reply *ProductUpdateReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := product.UpdateInfo(
		arguments.Owner,
		arguments.ProductCode,
		arguments.InstitutionCode,
		arguments.UpdateData,
	)
	if nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// ProductStatusArguments - arguments for listing or withdrawing
type ProductStatusArguments struct {
	Owner           account.Account `json:"owner"`
	ProductCode     string          `json:"productCode"`
	InstitutionCode string          `json:"institutionCode"`
	Status          product.Status  `json:"status"`
}

// UpdateStatus - list or withdraw a product
func (p *Product) UpdateStatus(arguments *ProductStatusArguments, reply *ProductUpdateReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := product.UpdateStatus(
		arguments.Owner,
		arguments.ProductCode,
		arguments.InstitutionCode,
		arguments.Status,
	)
	if nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// ProductStockArguments - arguments for resetting stock
type ProductStockArguments struct {
	Owner           account.Account `json:"owner"`
	ProductCode     string          `json:"productCode"`
	InstitutionCode string          `json:"institutionCode"`
	StockQuantity   uint32          `json:"stockQuantity"`
}

// UpdateStock - reset the stock counter of a product
func (p *Product) UpdateStock(arguments *ProductStockArguments, reply *ProductUpdateReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := product.UpdateStock(
		arguments.Owner,
		arguments.ProductCode,
		arguments.InstitutionCode,
		arguments.StockQuantity,
	)
	if nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// ProductPurchaseArguments - arguments for buying stock
type ProductPurchaseArguments struct {
	Buyer           account.Account `json:"buyer"`
	ProductCode     string          `json:"productCode"`
	InstitutionCode string          `json:"institutionCode"`
	Quantity        uint32          `json:"quantity"`
}

// ProductPurchaseReply - stock position after the purchase
type ProductPurchaseReply struct {
	ProductCode   string `json:"productCode"`
	StockQuantity uint32 `json:"stockQuantity"`
	SalesQuantity uint32 `json:"salesQuantity"`
}

// Purchase - buy stock of a product, open to any caller
func (p *Product) Purchase(arguments *ProductPurchaseArguments, reply *ProductPurchaseReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Buyer.IsZero() {
		return fault.MissingParameters
	}

	err := product.Purchase(
		arguments.Buyer,
		arguments.ProductCode,
		arguments.InstitutionCode,
		arguments.Quantity,
	)
	if nil != err {
		return err
	}

	record, err := product.Get(arguments.ProductCode, arguments.InstitutionCode)
	if nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.StockQuantity = record.StockQuantity
	reply.SalesQuantity = record.SalesQuantity
	return nil
}

// ProductArguments - arguments naming one product
type ProductArguments struct {
	Owner           account.Account `json:"owner"`
	ProductCode     string          `json:"productCode"`
	InstitutionCode string          `json:"institutionCode"`
}

// Delete - remove a product and its index entry
func (p *Product) Delete(arguments *ProductArguments, reply *ProductUpdateReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := product.Delete(arguments.Owner, arguments.ProductCode, arguments.InstitutionCode); nil != err {
		return err
	}

	reply.ProductCode = arguments.ProductCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// ProductGetArguments - arguments for fetching one product
type ProductGetArguments struct {
	ProductCode     string `json:"productCode"`
	InstitutionCode string `json:"institutionCode"`
}

// ProductGetReply - the full product record
type ProductGetReply struct {
	Product *product.Product `json:"product"`
}

// Get - fetch one product record
func (p *Product) Get(arguments *ProductGetArguments, reply *ProductGetReply) error {

	if err := rateLimit(p.limiter); nil != err {
		return err
	}

	record, err := product.Get(arguments.ProductCode, arguments.InstitutionCode)
	if nil != err {
		return err
	}
	reply.Product = record
	return nil
}

// ProductListArguments - arguments for listing a catalogue
type ProductListArguments struct {
	InstitutionCode string `json:"institutionCode"`
	Count           int    `json:"count"`
}

// ProductListReply - codes in the catalogue
type ProductListReply struct {
	ProductCodes []string `json:"productCodes"`
}

// List - product codes of an institution's catalogue
func (p *Product) List(arguments *ProductListArguments, reply *ProductListReply) error {

	if err := rateLimitN(p.limiter, arguments.Count, maximumProductList); nil != err {
		return err
	}
	if "" == arguments.InstitutionCode {
		return fault.MissingParameters
	}

	codes, err := product.ListForInstitution(arguments.InstitutionCode)
	if nil != err {
		return err
	}

	if len(codes) > arguments.Count {
		codes = codes[:arguments.Count]
	}
	reply.ProductCodes = codes
	return nil
}
