// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/marketmesh/marketd/codelist"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/storage"
)

// Configuration - index capacities for the token module
type Configuration struct {
	InstitutionIndexSize int `gluamapper:"institution_index_size" json:"institution_index_size"`
	OwnerIndexSize       int `gluamapper:"owner_index_size" json:"owner_index_size"`
}

const (
	defaultInstitutionIndexSize = 10000
	defaultOwnerIndexSize       = 1000
)

var globalData struct {
	sync.RWMutex
	log              *logger.L
	institutionIndex *codelist.Index
	ownerIndex       *codelist.Index

	// set once during initialise
	initialised bool
}

// Initialise - setup the token module
//
// storage must already be initialised
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("token")
	globalData.log.Info("starting…")

	if configuration.InstitutionIndexSize <= 0 {
		configuration.InstitutionIndexSize = defaultInstitutionIndexSize
	}
	if configuration.OwnerIndexSize <= 0 {
		configuration.OwnerIndexSize = defaultOwnerIndexSize
	}

	globalData.institutionIndex = codelist.NewIndex(storage.Pool.InstitutionTokens, configuration.InstitutionIndexSize)
	globalData.ownerIndex = codelist.NewIndex(storage.Pool.OwnerTokens, configuration.OwnerIndexSize)

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
