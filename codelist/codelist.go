// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codelist

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// Packed - a byte string of length-prefixed entries
//
// each entry is a big endian uint16 length followed by that many
// bytes; entries keep their insertion order
type Packed []byte

// maximum bytes a single entry can hold
const maxEntryLength = 65535

// Append - add one entry to the end of the list
func (p Packed) Append(entry []byte) Packed {
	if len(entry) > maxEntryLength {
		logger.Panicf("codelist.Append entry too long: %d", len(entry))
	}
	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(entry)))
	return append(append(p, count...), entry...)
}

// Unpack - split the list into its entries
//
// panics on a truncated list as that indicates database corruption
func (p Packed) Unpack() [][]byte {
	entries := make([][]byte, 0, 8)
	buffer := []byte(p)
	for len(buffer) > 0 {
		if len(buffer) < 2 {
			logger.Panicf("codelist.Unpack truncated length: %x", p)
		}
		n := int(binary.BigEndian.Uint16(buffer[:2]))
		buffer = buffer[2:]
		if len(buffer) < n {
			logger.Panicf("codelist.Unpack truncated entry: %x", p)
		}
		entries = append(entries, buffer[:n])
		buffer = buffer[n:]
	}
	return entries
}

// Count - number of entries in the list
func (p Packed) Count() int {
	n := 0
	buffer := []byte(p)
	for len(buffer) > 0 {
		if len(buffer) < 2 {
			logger.Panicf("codelist.Count truncated length: %x", p)
		}
		l := int(binary.BigEndian.Uint16(buffer[:2]))
		if len(buffer) < 2+l {
			logger.Panicf("codelist.Count truncated entry: %x", p)
		}
		buffer = buffer[2+l:]
		n += 1
	}
	return n
}

// Contains - true if an identical entry is already in the list
func (p Packed) Contains(entry []byte) bool {
	for _, e := range p.Unpack() {
		if bytes.Equal(e, entry) {
			return true
		}
	}
	return false
}

// Remove - drop the first matching entry
//
// second result is false if the entry was not present
func (p Packed) Remove(entry []byte) (Packed, bool) {
	buffer := []byte(p)
	offset := 0
	for offset < len(buffer) {
		if len(buffer) < offset+2 {
			logger.Panicf("codelist.Remove truncated length: %x", p)
		}
		n := int(binary.BigEndian.Uint16(buffer[offset : offset+2]))
		start := offset
		offset += 2
		if len(buffer) < offset+n {
			logger.Panicf("codelist.Remove truncated entry: %x", p)
		}
		if bytes.Equal(buffer[offset:offset+n], entry) {
			result := make(Packed, 0, len(buffer)-n-2)
			result = append(result, buffer[:start]...)
			result = append(result, buffer[offset+n:]...)
			return result, true
		}
		offset += n
	}
	return p, false
}

// Pair - join a length-prefixed first item with a second
//
// used both for composite record keys (code + institution) and for
// owner/token pair entries inside an index bucket
func Pair(first []byte, second []byte) []byte {
	if len(first) > maxEntryLength {
		logger.Panicf("codelist.Pair first item too long: %d", len(first))
	}
	count := make([]byte, 2)
	binary.BigEndian.PutUint16(count, uint16(len(first)))
	result := make([]byte, 0, 2+len(first)+len(second))
	return append(append(append(result, count...), first...), second...)
}

// SplitPair - recover the two items of a Pair
func SplitPair(pair []byte) ([]byte, []byte) {
	if len(pair) < 2 {
		logger.Panicf("codelist.SplitPair truncated pair: %x", pair)
	}
	n := int(binary.BigEndian.Uint16(pair[:2]))
	if len(pair) < 2+n {
		logger.Panicf("codelist.SplitPair truncated first item: %x", pair)
	}
	return pair[2 : 2+n], pair[2+n:]
}
