// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - one domain event and the module that produced it
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing events
	queue = make(chan Message, queueSize)
)

// Send - post one event to the queue
//
// events are dropped rather than blocking the caller when no reader
// keeps up; the queue is sized so this only happens if event delivery
// is broken
func Send(from string, item interface{}) {
	select {
	case queue <- Message{From: from, Item: item}:
	default:
	}
}

// Chan - channel to read events from
func Chan() <-chan Message {
	return queue
}

// Flush - discard all queued events
func Flush() {
	for {
		select {
		case <-queue:
		default:
			return
		}
	}
}
