// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendUnpack(t *testing.T) {
	p := Packed{}
	p = p.Append([]byte("one"))
	p = p.Append([]byte("two"))
	p = p.Append([]byte("three"))

	entries := p.Unpack()
	assert.Equal(t, 3, len(entries), "wrong entry count")
	assert.Equal(t, []byte("one"), entries[0], "wrong first entry")
	assert.Equal(t, []byte("two"), entries[1], "wrong second entry")
	assert.Equal(t, []byte("three"), entries[2], "wrong third entry")
	assert.Equal(t, 3, p.Count(), "count mismatch")
}

func TestEmptyList(t *testing.T) {
	p := Packed(nil)
	assert.Equal(t, 0, p.Count(), "empty list has entries")
	assert.Equal(t, 0, len(p.Unpack()), "empty list unpacks entries")
	assert.False(t, p.Contains([]byte("x")), "empty list contains entry")
}

func TestContains(t *testing.T) {
	p := Packed{}.Append([]byte("alpha")).Append([]byte("beta"))

	assert.True(t, p.Contains([]byte("alpha")), "missing entry")
	assert.True(t, p.Contains([]byte("beta")), "missing entry")
	assert.False(t, p.Contains([]byte("gamma")), "phantom entry")
	assert.False(t, p.Contains([]byte("alph")), "prefix matched as entry")
}

func TestRemove(t *testing.T) {
	p := Packed{}.Append([]byte("one")).Append([]byte("two")).Append([]byte("three"))

	p, found := p.Remove([]byte("two"))
	assert.True(t, found, "entry not removed")
	assert.Equal(t, 2, p.Count(), "wrong count after remove")
	assert.False(t, p.Contains([]byte("two")), "entry still present")

	entries := p.Unpack()
	assert.Equal(t, []byte("one"), entries[0], "order disturbed")
	assert.Equal(t, []byte("three"), entries[1], "order disturbed")

	_, found = p.Remove([]byte("two"))
	assert.False(t, found, "removed a missing entry")
}

func TestRemoveLast(t *testing.T) {
	p := Packed{}.Append([]byte("only"))
	p, found := p.Remove([]byte("only"))
	assert.True(t, found, "entry not removed")
	assert.Equal(t, 0, len(p), "list not empty")
}

func TestPairSplit(t *testing.T) {
	pair := Pair([]byte("product-1"), []byte("institution-9"))
	first, second := SplitPair(pair)
	assert.Equal(t, []byte("product-1"), first, "wrong first item")
	assert.Equal(t, []byte("institution-9"), second, "wrong second item")
}

func TestPairEmptySecond(t *testing.T) {
	pair := Pair([]byte("code"), nil)
	first, second := SplitPair(pair)
	assert.Equal(t, []byte("code"), first, "wrong first item")
	assert.Equal(t, 0, len(second), "second item not empty")
}

func TestPairsAreDistinct(t *testing.T) {
	// ("ab","c") and ("a","bc") must pack differently
	assert.NotEqual(t,
		Pair([]byte("ab"), []byte("c")),
		Pair([]byte("a"), []byte("bc")),
		"ambiguous pair packing")
}
