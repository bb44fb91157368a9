// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration or a hotkey
// file is unusable.
var (
	// ErrInvalidPollInterval indicates a clipboard poll interval outside
	// (0, 500ms].
	ErrInvalidPollInterval = errors.New("invalid poll interval")
	// ErrInvalidTickInterval indicates a scheduler tick interval outside
	// (0, 1s].
	ErrInvalidTickInterval = errors.New("invalid tick interval")
	// ErrInvalidHotkeys indicates an empty, duplicated or malformed hotkey.
	ErrInvalidHotkeys = errors.New("invalid hotkeys")
	// ErrNoHotkeysPath is returned by [HotkeyStore.Save] when no file
	// location is known.
	ErrNoHotkeysPath = errors.New("hotkeys file path is not set")
)
