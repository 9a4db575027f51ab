// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package product

import (
	"time"

	"github.com/marketmesh/marketd/account"
	"github.com/marketmesh/marketd/fault"
	"github.com/marketmesh/marketd/messagebus"
	"github.com/marketmesh/marketd/storage"
)

// CreateData - full field set for a new product
type CreateData struct {
	ProductCode      string
	InstitutionCode  string
	Name             string
	Category         string
	Brand            string
	AuthorizedGroups []string
	OriginalPrice    uint64
	CurrentPrice     uint64
	Description      string
	MainImage        string
	DetailImages     []string
	StockQuantity    uint32
	Weight           uint32
	ProfitRatio      uint32
}

func (data *CreateData) validate() error {
	if err := checkLength(data.ProductCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(data.InstitutionCode, maxCodeLength); nil != err {
		return err
	}
	if err := checkLength(data.Name, maxNameLength); nil != err {
		return err
	}
	if err := checkLength(data.Category, maxCategoryLength); nil != err {
		return err
	}
	if err := checkLength(data.Brand, maxBrandLength); nil != err {
		return err
	}
	if len(data.AuthorizedGroups) > maxAuthorizedGroups {
		return fault.TooManyAuthorizedGroups
	}
	for _, group := range data.AuthorizedGroups {
		if err := checkLength(group, maxGroupLength); nil != err {
			return err
		}
	}
	if data.CurrentPrice > data.OriginalPrice {
		return fault.InvalidPrice
	}
	if err := checkLength(data.Description, maxDescriptionLength); nil != err {
		return err
	}
	if err := checkLength(data.MainImage, maxImageURLLength); nil != err {
		return err
	}
	if len(data.DetailImages) > maxDetailImages {
		return fault.TooManyDetailImages
	}
	for _, image := range data.DetailImages {
		if err := checkLength(image, maxImageURLLength); nil != err {
			return err
		}
	}
	if data.ProfitRatio > maxProfitRatio {
		return fault.InvalidProfitRatio
	}
	return nil
}

// Create - store a new product in an institution's catalogue
func Create(caller account.Account, data CreateData) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if err := data.validate(); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	key := storageKey(data.ProductCode, data.InstitutionCode)
	if trx.Has(storage.Pool.Products, key) {
		trx.Abort()
		return fault.ProductAlreadyExists
	}

	record := &Product{
		ProductCode:      data.ProductCode,
		InstitutionCode:  data.InstitutionCode,
		Name:             data.Name,
		Category:         data.Category,
		Brand:            data.Brand,
		AuthorizedGroups: data.AuthorizedGroups,
		OriginalPrice:    data.OriginalPrice,
		CurrentPrice:     data.CurrentPrice,
		Description:      data.Description,
		MainImage:        data.MainImage,
		DetailImages:     data.DetailImages,
		StockQuantity:    data.StockQuantity,
		SalesQuantity:    0,
		Weight:           data.Weight,
		Status:           Available,
		ProfitRatio:      data.ProfitRatio,
		CreatedTime:      uint64(time.Now().Unix()),
		Creator:          caller,
	}

	packed, err := record.Pack()
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(storage.Pool.Products, key, packed)

	if err := globalData.institutionIndex.Insert(trx, []byte(data.InstitutionCode), []byte(data.ProductCode)); nil != err {
		trx.Abort()
		return fault.InstitutionListFull
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("created product: %q institution: %q", data.ProductCode, data.InstitutionCode)
	messagebus.Send(eventSource, CreatedEvent{
		ProductCode:     data.ProductCode,
		InstitutionCode: data.InstitutionCode,
		Creator:         caller,
	})
	return nil
}
