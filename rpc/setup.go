// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/fault"
)

const (
	listenerName = "client_rpc"
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	listener *listener.MultiListener

	// set once during initialise
	initialised bool
}

var globalData rpcData

// Initialise - start the RPC listeners
//
// all domain modules must already be initialised
func Initialise(configuration *Configuration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", listenerName, configuration.MaximumConnections)
		return fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", listenerName)
		return fault.MissingParameters
	}

	keyPair, err := tls.LoadX509KeyPair(configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", listenerName, err)
		return err
	}
	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", listenerName, sha3.Sum256(keyPair.Certificate[0]))

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	ml, err := listener.NewMultiListener(listenerName, configuration.Listen, tlsConfiguration, limiter, callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %s", listenerName, err)
		return err
	}
	globalData.listener = ml

	argument := &serverArgument{
		log:    log,
		server: createServer(log, version, time.Now()),
	}
	ml.Start(argument)

	globalData.initialised = true
	return nil
}

// Finalise - stop the RPC listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
