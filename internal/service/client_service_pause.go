// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync/atomic"
	"time"

	"github.com/MKhiriev/totp-clip/models"
)

// PauseSwitch gates clipboard recognition. It does not stop auto-refresh
// of a seed adopted before the pause.
type PauseSwitch struct {
	paused atomic.Bool
	events *EventBus
	now    func() time.Time
}

// NewPauseSwitch creates a running (not paused) switch. State changes are
// announced on events when it is non-nil.
func NewPauseSwitch(events *EventBus) *PauseSwitch {
	return &PauseSwitch{events: events, now: time.Now}
}

// Paused reports the current state.
func (p *PauseSwitch) Paused() bool {
	return p.paused.Load()
}

// Pause stops recognition.
func (p *PauseSwitch) Pause() {
	p.set(true)
}

// Resume restarts recognition.
func (p *PauseSwitch) Resume() {
	p.set(false)
}

// Toggle flips the state and returns the new value.
func (p *PauseSwitch) Toggle() bool {
	for {
		old := p.paused.Load()
		if p.paused.CompareAndSwap(old, !old) {
			p.announce(!old)
			return !old
		}
	}
}

func (p *PauseSwitch) set(paused bool) {
	if p.paused.Swap(paused) != paused {
		p.announce(paused)
	}
}

func (p *PauseSwitch) announce(paused bool) {
	if p.events == nil {
		return
	}

	status := StatusWaiting
	if paused {
		status = StatusPaused
	}
	p.events.Publish(models.Event{
		Kind:   models.EventPaused,
		At:     p.now(),
		Paused: paused,
		Status: status,
	})
}
