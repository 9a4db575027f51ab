// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package product - institutional catalogue products
//
// a product is keyed by (product code, institution code) and carries
// pricing, imagery and stock counters.  The only index dimension is
// the owning institution.  Catalogue maintenance is creator-gated;
// purchasing is open to any caller and adjusts the stock and sales
// counters under an insufficient-stock check.
package product
