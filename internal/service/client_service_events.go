// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/totp-clip/models"
)

const defaultEventBuffer = 64

// EventBus carries display events from the poller and scheduler to the
// display. Publishing never blocks: when the buffer is full the event is
// dropped, since every event kind is superseded by the next one.
type EventBus struct {
	mu     sync.RWMutex
	ch     chan models.Event
	closed bool

	dropped atomic.Uint64
}

// NewEventBus creates a bus with room for size pending events. A
// non-positive size selects the default.
func NewEventBus(size int) *EventBus {
	if size <= 0 {
		size = defaultEventBuffer
	}
	return &EventBus{ch: make(chan models.Event, size)}
}

// Publish enqueues ev. It reports whether the event was accepted.
func (b *EventBus) Publish(ev models.Event) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}

	select {
	case b.ch <- ev:
		return true
	default:
		b.dropped.Add(1)
		return false
	}
}

// Events returns the receive side of the bus. The channel is closed by
// [EventBus.Close].
func (b *EventBus) Events() <-chan models.Event {
	return b.ch
}

// Dropped returns the number of events discarded because the buffer was
// full.
func (b *EventBus) Dropped() uint64 {
	return b.dropped.Load()
}

// Close closes the event channel. Later calls to Publish are ignored.
// Safe to call more than once.
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}
