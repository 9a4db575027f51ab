// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketmesh/marketd/messagebus"
)

func TestSendReceive(t *testing.T) {
	messagebus.Flush()

	messagebus.Send("one", 1)
	messagebus.Send("two", "second")

	m := <-messagebus.Chan()
	assert.Equal(t, "one", m.From, "wrong sender")
	assert.Equal(t, 1, m.Item, "wrong item")

	m = <-messagebus.Chan()
	assert.Equal(t, "two", m.From, "wrong sender")
	assert.Equal(t, "second", m.Item, "wrong item")
}

func TestFlush(t *testing.T) {
	messagebus.Send("x", 42)
	messagebus.Flush()

	select {
	case m := <-messagebus.Chan():
		t.Fatalf("unexpected message after flush: %v", m)
	default:
	}
}
