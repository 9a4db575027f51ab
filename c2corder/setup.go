// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c2corder

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Configuration - index capacities for the c2c order module
type Configuration struct {
	OwnerIndexSize       int `gluamapper:"owner_index_size" json:"owner_index_size"`
	InstitutionIndexSize int `gluamapper:"institution_index_size" json:"institution_index_size"`
	StatusIndexSize      int `gluamapper:"status_index_size" json:"status_index_size"`
}

const (
	defaultOwnerIndexSize       = 1000
	defaultInstitutionIndexSize = 10000
	defaultStatusIndexSize      = 10000
)

var globalData struct {
	sync.RWMutex
	log              *logger.L
	ownerIndex       *codelist.Index
	institutionIndex *codelist.Index
	statusIndex      *codelist.Index

	// set once during initialise
	initialised bool
}

// Initialise - setup the c2c order module
//
// storage must already be initialised
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("c2corder")
	globalData.log.Info("starting…")

	if configuration.OwnerIndexSize <= 0 {
		configuration.OwnerIndexSize = defaultOwnerIndexSize
	}
	if configuration.InstitutionIndexSize <= 0 {
		configuration.InstitutionIndexSize = defaultInstitutionIndexSize
	}
	if configuration.StatusIndexSize <= 0 {
		configuration.StatusIndexSize = defaultStatusIndexSize
	}

	globalData.ownerIndex = codelist.NewIndex(storage.Pool.OwnerC2COrders, configuration.OwnerIndexSize)
	globalData.institutionIndex = codelist.NewIndex(storage.Pool.InstitutionC2COrders, configuration.InstitutionIndexSize)
	globalData.statusIndex = codelist.NewIndex(storage.Pool.C2COrdersByStatus, configuration.StatusIndexSize)

	globalData.initialised = true
	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}
