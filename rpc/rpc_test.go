// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"fmt"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/c2corder"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/mode"
	"github.com/marketmesh/marketd/order"
	"github.com/marketmesh/marketd/product"
	"github.com/marketmesh/marketd/storage"
	"github.com/marketmesh/marketd/token"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

var owner = account.Account{7}

func setup() error {
	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		return err
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		return err
	}
	if err := storage.Initialise(databaseFileName); nil != err {
		return err
	}
	if err := mode.Initialise(); nil != err {
		return err
	}
	mode.Set(mode.Normal)
	if err := order.Initialise(order.Configuration{}); nil != err {
		return err
	}
	if err := c2corder.Initialise(c2corder.Configuration{}); nil != err {
		return err
	}
	if err := product.Initialise(product.Configuration{}); nil != err {
		return err
	}
	return token.Initialise(token.Configuration{})
}

func teardown() {
	_ = token.Finalise()
	_ = product.Finalise()
	_ = c2corder.Finalise()
	_ = order.Finalise()
	_ = mode.Finalise()
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	if err := setup(); nil != err {
		teardown()
		fmt.Fprintf(os.Stderr, "setup error: %s\n", err)
		os.Exit(1)
	}
	rc := m.Run()
	teardown()
	os.Exit(rc)
}

func testLimiter() *rate.Limiter {
	return rate.NewLimiter(200, 100)
}

func TestOrderService(t *testing.T) {
	service := &Order{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	createReply := OrderCreateReply{}
	err := service.Create(&OrderCreateArguments{
		Owner:           owner,
		OrderCode:       "R1",
		MemberCode:      "M1",
		InstitutionCode: "I1",
		Freight:         10,
		Items: []order.Item{
			{ProductCode: "P1", Quantity: 2, PricePerUnit: 100, Weight: 500},
		},
	}, &createReply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, "R1", createReply.OrderCode, "wrong order code")

	getReply := OrderGetReply{}
	err = service.Get(&OrderGetArguments{OrderCode: "R1"}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(210), getReply.Order.TotalAmount, "wrong total amount")

	statusReply := OrderStatusReply{}
	err = service.UpdateStatus(&OrderStatusArguments{
		Owner:     owner,
		OrderCode: "R1",
		Status:    order.Paid,
	}, &statusReply)
	assert.Nil(t, err, "wrong UpdateStatus")
	assert.Equal(t, order.Paid, statusReply.Status, "wrong status")

	listReply := OrderListReply{}
	err = service.List(&OrderListArguments{MemberCode: "M1", Count: 10}, &listReply)
	assert.Nil(t, err, "wrong List")
	assert.Contains(t, listReply.OrderCodes, "R1", "missing order code")

	err = service.List(&OrderListArguments{Count: 10}, &listReply)
	assert.Equal(t, fault.MissingParameters, err, "selector not required")
}

func TestOrderServiceMissingOwner(t *testing.T) {
	service := &Order{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	err := service.Create(&OrderCreateArguments{
		OrderCode:       "R-anon",
		MemberCode:      "M1",
		InstitutionCode: "I1",
		Items: []order.Item{
			{ProductCode: "P1", Quantity: 1, PricePerUnit: 1},
		},
	}, &OrderCreateReply{})
	assert.Equal(t, fault.MissingParameters, err, "anonymous create accepted")
}

func TestC2COrderService(t *testing.T) {
	service := &C2COrder{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	err := service.Create(&C2COrderCreateArguments{
		Owner:             owner,
		OrderCode:         "C1",
		MemberCode:        "M1",
		InstitutionCode:   "I1",
		Direction:         c2corder.Sell,
		TransactionAmount: 100,
		TotalAmount:       110,
	}, &C2COrderCreateReply{})
	assert.Nil(t, err, "wrong Create")

	statusReply := C2COrderStatusReply{}
	err = service.UpdateStatus(&C2COrderStatusArguments{
		Owner:     owner,
		OrderCode: "C1",
		Status:    c2corder.Paid,
	}, &statusReply)
	assert.Nil(t, err, "wrong UpdateStatus")

	err = service.Complete(&C2COrderArguments{Owner: owner, OrderCode: "C1"}, &statusReply)
	assert.Equal(t, fault.InvalidStatusTransition, err, "early completion accepted")

	err = service.Cancel(&C2COrderArguments{Owner: owner, OrderCode: "C1"}, &statusReply)
	assert.Nil(t, err, "wrong Cancel")
	assert.Equal(t, c2corder.Cancelled, statusReply.Status, "wrong status")
}

func TestProductService(t *testing.T) {
	service := &Product{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	err := service.Create(&ProductCreateArguments{
		Owner: owner,
		CreateData: product.CreateData{
			ProductCode:     "SP1",
			InstitutionCode: "I1",
			Name:            "Widget",
			OriginalPrice:   200,
			CurrentPrice:    150,
			StockQuantity:   5,
		},
	}, &ProductCreateReply{})
	assert.Nil(t, err, "wrong Create")

	purchaseReply := ProductPurchaseReply{}
	err = service.Purchase(&ProductPurchaseArguments{
		Buyer:           account.Account{8},
		ProductCode:     "SP1",
		InstitutionCode: "I1",
		Quantity:        2,
	}, &purchaseReply)
	assert.Nil(t, err, "wrong Purchase")
	assert.Equal(t, uint32(3), purchaseReply.StockQuantity, "wrong stock")
	assert.Equal(t, uint32(2), purchaseReply.SalesQuantity, "wrong sales")

	listReply := ProductListReply{}
	err = service.List(&ProductListArguments{InstitutionCode: "I1", Count: 10}, &listReply)
	assert.Nil(t, err, "wrong List")
	assert.Contains(t, listReply.ProductCodes, "SP1", "missing product code")
}

func TestTokenService(t *testing.T) {
	service := &Token{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	err := service.Create(&TokenCreateArguments{
		Owner:           owner,
		TokenCode:       "TK1",
		InstitutionCode: "I1",
		Name:            "Credit",
		Category:        "credits",
		Price:           25,
		Direction:       token.Sell,
		StockQuantity:   10,
	}, &TokenCreateReply{})
	assert.Nil(t, err, "wrong Create")

	tradeReply := TokenTradeReply{}
	err = service.Trade(&TokenTradeArguments{
		Trader:          account.Account{8},
		TokenCode:       "TK1",
		InstitutionCode: "I1",
		Quantity:        4,
	}, &tradeReply)
	assert.Nil(t, err, "wrong Trade")
	assert.Equal(t, uint32(6), tradeReply.StockQuantity, "wrong stock")

	listReply := TokenListReply{}
	err = service.List(&TokenListArguments{Owner: owner, Count: 10}, &listReply)
	assert.Nil(t, err, "wrong List")
	assert.Contains(t, listReply.Holdings, token.Holding{TokenCode: "TK1", InstitutionCode: "I1"}, "missing holding")
}

func TestNodeService(t *testing.T) {
	service := &Node{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
		start:   time.Now(),
		version: "1.0.0-test",
	}

	reply := InfoReply{}
	err := service.Info(&InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.0.0-test", reply.Version, "wrong version")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
}

// the listener dispatches connections through this type
var _ listener.Callback = callback

func TestCallbackServesConnection(t *testing.T) {
	serverConn, clientConn := net.Pipe()

	argument := &serverArgument{
		log:    logger.New("rpc-test"),
		server: createServer(logger.New("rpc-test"), "1.0.0-test", time.Now()),
	}

	done := make(chan struct{})
	go func() {
		callback(serverConn, argument)
		close(done)
	}()

	client := jsonrpc.NewClient(clientConn)

	reply := InfoReply{}
	err := client.Call("Node.Info", &InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Call")
	assert.Equal(t, "1.0.0-test", reply.Version, "wrong version")

	client.Close()
	<-done
}

func TestServiceStopped(t *testing.T) {
	service := &Order{
		log:     logger.New("rpc-test"),
		limiter: testLimiter(),
	}

	mode.Set(mode.Stopped)
	defer mode.Set(mode.Normal)

	err := service.Cancel(&OrderArguments{Owner: owner, OrderCode: "R1"}, &OrderStatusReply{})
	assert.Equal(t, fault.NotAvailable, err, "mutation accepted while stopped")
}
