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
	"github.com/marketmesh/marketd/token"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	log     *logger.L
	limiter *rate.Limiter
}

// limit for list results
const maximumTokenList = 100

// TokenCreateArguments - full field set for a new token
type TokenCreateArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           uint64          `json:"price"`
	Direction       token.Direction `json:"direction"`
	StockQuantity   uint32          `json:"stockQuantity"`
}

// TokenCreateReply - result of creating a token
type TokenCreateReply struct {
	TokenCode       string `json:"tokenCode"`
	InstitutionCode string `json:"institutionCode"`
}

// Create - store a new token
func (t *Token) Create(arguments *TokenCreateArguments, reply *TokenCreateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Owner.IsZero() {
		return fault.MissingParameters
	}

	err := token.Create(
		arguments.Owner,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.Name,
		arguments.Category,
		arguments.Price,
		arguments.Direction,
		arguments.StockQuantity,
	)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	return nil
}

// TokenUpdateArguments - optional field changes for a token
type TokenUpdateArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	token.UpdateData
}

// TokenUpdateReply - generic acknowledgement
type TokenUpdateReply struct {
	TokenCode       string `json:"tokenCode"`
	InstitutionCode string `json:"institutionCode"`
	OK              bool   `json:"ok"`
}

// UpdateInfo - change catalogue fields of a token
func (t *Token) UpdateInfo(arguments *TokenUpdateArguments, reply *TokenUpdateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := token.UpdateInfo(
		arguments.Owner,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.UpdateData,
	)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// TokenStatusArguments - arguments for listing or withdrawing
type TokenStatusArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	Status          token.Status    `json:"status"`
}

// UpdateStatus - list or withdraw a token
func (t *Token) UpdateStatus(arguments *TokenStatusArguments, reply *TokenUpdateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := token.UpdateStatus(
		arguments.Owner,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.Status,
	)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// TokenPriceArguments - arguments for repricing
type TokenPriceArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	Price           uint64          `json:"price"`
}

// UpdatePrice - change the unit price of a token
func (t *Token) UpdatePrice(arguments *TokenPriceArguments, reply *TokenUpdateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := token.UpdatePrice(
		arguments.Owner,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.Price,
	)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// TokenStockArguments - arguments for resetting stock
type TokenStockArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	StockQuantity   uint32          `json:"stockQuantity"`
}

// UpdateStock - reset the stock counter of a token
func (t *Token) UpdateStock(arguments *TokenStockArguments, reply *TokenUpdateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	err := token.UpdateStock(
		arguments.Owner,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.StockQuantity,
	)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// TokenTradeArguments - arguments for trading stock
type TokenTradeArguments struct {
	Trader          account.Account `json:"trader"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
	Quantity        uint32          `json:"quantity"`
}

// TokenTradeReply - stock position after the trade
type TokenTradeReply struct {
	TokenCode     string `json:"tokenCode"`
	StockQuantity uint32 `json:"stockQuantity"`
	SalesQuantity uint32 `json:"salesQuantity"`
}

// Trade - move stock through a token, open to any caller
func (t *Token) Trade(arguments *TokenTradeArguments, reply *TokenTradeReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}
	if arguments.Trader.IsZero() {
		return fault.MissingParameters
	}

	err := token.Trade(
		arguments.Trader,
		arguments.TokenCode,
		arguments.InstitutionCode,
		arguments.Quantity,
	)
	if nil != err {
		return err
	}

	record, err := token.Get(arguments.TokenCode, arguments.InstitutionCode)
	if nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.StockQuantity = record.StockQuantity
	reply.SalesQuantity = record.SalesQuantity
	return nil
}

// TokenArguments - arguments naming one token
type TokenArguments struct {
	Owner           account.Account `json:"owner"`
	TokenCode       string          `json:"tokenCode"`
	InstitutionCode string          `json:"institutionCode"`
}

// Delete - remove a token and its index entries
func (t *Token) Delete(arguments *TokenArguments, reply *TokenUpdateReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.NotAvailable
	}

	if err := token.Delete(arguments.Owner, arguments.TokenCode, arguments.InstitutionCode); nil != err {
		return err
	}

	reply.TokenCode = arguments.TokenCode
	reply.InstitutionCode = arguments.InstitutionCode
	reply.OK = true
	return nil
}

// TokenGetArguments - arguments for fetching one token
type TokenGetArguments struct {
	TokenCode       string `json:"tokenCode"`
	InstitutionCode string `json:"institutionCode"`
}

// TokenGetReply - the full token record
type TokenGetReply struct {
	Token *token.Token `json:"token"`
}

// Get - fetch one token record
func (t *Token) Get(arguments *TokenGetArguments, reply *TokenGetReply) error {

	if err := rateLimit(t.limiter); nil != err {
		return err
	}

	record, err := token.Get(arguments.TokenCode, arguments.InstitutionCode)
	if nil != err {
		return err
	}
	reply.Token = record
	return nil
}

// TokenListArguments - exactly one selector must be supplied
type TokenListArguments struct {
	InstitutionCode string          `json:"institutionCode,omitempty"`
	Owner           account.Account `json:"owner,omitempty"`
	Count           int             `json:"count"`
}

// TokenListReply - catalogue codes or owner holdings
type TokenListReply struct {
	TokenCodes []string        `json:"tokenCodes,omitempty"`
	Holdings   []token.Holding `json:"holdings,omitempty"`
}

// List - token codes of an institution or holdings of an owner
func (t *Token) List(arguments *TokenListArguments, reply *TokenListReply) error {

	if err := rateLimitN(t.limiter, arguments.Count, maximumTokenList); nil != err {
		return err
	}

	switch {
	case "" != arguments.InstitutionCode:
		codes, err := token.ListForInstitution(arguments.InstitutionCode)
		if nil != err {
			return err
		}
		if len(codes) > arguments.Count {
			codes = codes[:arguments.Count]
		}
		reply.TokenCodes = codes

	case !arguments.Owner.IsZero():
		holdings, err := token.ListForOwner(arguments.Owner)
		if nil != err {
			return err
		}
		if len(holdings) > arguments.Count {
			holdings = holdings[:arguments.Count]
		}
		reply.Holdings = holdings

	default:
		return fault.MissingParameters
	}
	return nil
}
