// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"testing"

	"github.com/MKhiriev/totp-clip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseSwitch_StartsRunning(t *testing.T) {
	p := NewPauseSwitch(nil)
	assert.False(t, p.Paused())
}

func TestPauseSwitch_PauseResume(t *testing.T) {
	bus := NewEventBus(8)
	p := NewPauseSwitch(bus)

	p.Pause()
	assert.True(t, p.Paused())
	p.Resume()
	assert.False(t, p.Paused())

	got := eventsOf(drain(bus), models.EventPaused)
	require.Len(t, got, 2)
	assert.True(t, got[0].Paused)
	assert.Equal(t, StatusPaused, got[0].Status)
	assert.False(t, got[1].Paused)
	assert.Equal(t, StatusWaiting, got[1].Status)
}

func TestPauseSwitch_NoEventWithoutChange(t *testing.T) {
	bus := NewEventBus(8)
	p := NewPauseSwitch(bus)

	p.Resume()
	p.Pause()
	p.Pause()

	assert.Len(t, drain(bus), 1)
}

func TestPauseSwitch_Toggle(t *testing.T) {
	p := NewPauseSwitch(nil)

	assert.True(t, p.Toggle())
	assert.True(t, p.Paused())
	assert.False(t, p.Toggle())
	assert.False(t, p.Paused())
}

func TestPauseSwitch_ConcurrentToggle(t *testing.T) {
	p := NewPauseSwitch(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Toggle()
		}()
	}
	wg.Wait()

	assert.False(t, p.Paused(), "an even number of toggles restores the initial state")
}
