// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for totpclip.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file. Unset fields are filled from [Defaults].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Boolean switches whose default is true are pointers so that an explicit
// false survives the merge.
type StructuredConfig struct {
	// Workers holds the sampling rates of the clipboard poller and the
	// refresh scheduler.
	Workers Workers `envPrefix:"TOTP_"`

	// Display selects the user-facing surface and what it reveals.
	Display Display `envPrefix:"TOTP_"`

	// Logging controls where the structured log is written.
	Logging Logging `envPrefix:"TOTP_"`

	// HotkeysFile is the path of the persisted hotkey file.
	// Env: TOTP_HOTKEYS_FILE
	HotkeysFile string `env:"TOTP_HOTKEYS_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Workers holds the background loop intervals.
type Workers struct {
	// PollInterval is how often the clipboard is sampled.
	// Env: TOTP_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// TickInterval is how often the scheduler checks for a period boundary.
	// Env: TOTP_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// Display holds presentation settings.
type Display struct {
	// Headless replaces the terminal UI with log lines on stdout.
	// Env: TOTP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// Notify enables desktop notifications.
	// Env: TOTP_NOTIFY
	Notify *bool `env:"NOTIFY"`

	// RevealSecret shows the decoded secret in clear text until masked.
	// Env: TOTP_REVEAL_SECRET
	RevealSecret *bool `env:"REVEAL_SECRET"`
}

// Logging holds log output settings.
type Logging struct {
	// File is the log file path. Empty means stderr.
	// Env: TOTP_LOG_FILE
	File string `env:"LOG_FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
