// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the helper state. [TUI] is a bubbletea program that
// shows the current code, its countdown and the seed parameters, and lets
// the user pause recognition and edit hotkeys. [Headless] prints the same
// events as log lines for use without a terminal UI.
//
// Both consume a read-only event channel and never touch the clipboard or
// the session directly.
package tui

import "github.com/MKhiriev/totp-clip/internal/config"

// PauseController switches clipboard recognition on and off.
type PauseController interface {
	Pause()
	Resume()
	Toggle() bool
	Paused() bool
}

// HotkeyStore loads and persists the pause/resume chords.
type HotkeyStore interface {
	Load() (config.Hotkeys, error)
	Save(h config.Hotkeys) error
}
