// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/models"
	tea "github.com/charmbracelet/bubbletea"
)

type eventMsg models.Event

type eventsClosedMsg struct{}

type hotkeysSavedMsg struct {
	hotkeys config.Hotkeys
	reset   bool
	err     error
}

// waitForEvent delivers the next bus event to the program.
func waitForEvent(events <-chan models.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}
