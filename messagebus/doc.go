// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - the internal event queue
//
// Every successful mutation posts exactly one domain event here after
// its storage transaction has committed.  Failed calls post nothing.
package messagebus
