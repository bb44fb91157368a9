// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultPollInterval is the clipboard sampling rate.
	DefaultPollInterval = 300 * time.Millisecond
	// DefaultTickInterval is the scheduler rate.
	DefaultTickInterval = 250 * time.Millisecond

	// MaxPollInterval bounds the delay between a copy and its code.
	MaxPollInterval = 500 * time.Millisecond
	// MaxTickInterval bounds the delay between a period boundary and the
	// refreshed code.
	MaxTickInterval = time.Second

	appDirName       = "TOTPClipHelper"
	hotkeysFileName  = "config.json"
	logFileName      = "totpclip.log"
	defaultPauseKey  = "ctrl+alt+9"
	defaultResumeKey = "ctrl+alt+0"
)

// Defaults returns the configuration used for every field no source sets.
// File paths are left empty when the user config directory is unknown.
func Defaults() *StructuredConfig {
	on := true
	reveal := true

	return &StructuredConfig{
		Workers: Workers{
			PollInterval: DefaultPollInterval,
			TickInterval: DefaultTickInterval,
		},
		Display: Display{
			Notify:       &on,
			RevealSecret: &reveal,
		},
		Logging: Logging{
			File: appFile(logFileName),
		},
		HotkeysFile: appFile(hotkeysFileName),
	}
}

// DefaultHotkeysPath returns $UserConfigDir/TOTPClipHelper/config.json, or
// "" if the user config directory cannot be determined.
func DefaultHotkeysPath() string {
	return appFile(hotkeysFileName)
}

func appFile(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, appDirName, name)
}
