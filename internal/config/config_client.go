// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientWorkers contains the background loop settings.
type ClientWorkers struct {
	// PollInterval defines how often the clipboard is sampled.
	PollInterval time.Duration
	// TickInterval defines how often the scheduler runs.
	TickInterval time.Duration
}

// ClientDisplay contains display settings with all defaults resolved.
type ClientDisplay struct {
	Headless     bool
	Notify       bool
	RevealSecret bool
}

// ClientLogging contains log output settings.
type ClientLogging struct {
	// File is the log destination. Empty means stderr.
	File string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Workers contains poller and scheduler intervals.
	Workers ClientWorkers
	// Display contains presentation switches.
	Display ClientDisplay
	// Logging contains log output settings.
	Logging ClientLogging
	// HotkeysFile is where [HotkeyStore] reads and writes hotkeys.
	HotkeysFile string
}

// GetClientConfig builds and validates the runtime config from args (the
// command line without the program name), the environment and an optional
// JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			TickInterval: cfg.Workers.TickInterval,
		},
		Display: ClientDisplay{
			Headless:     cfg.Display.Headless,
			Notify:       boolValue(cfg.Display.Notify, true),
			RevealSecret: boolValue(cfg.Display.RevealSecret, true),
		},
		Logging: ClientLogging{
			File: cfg.Logging.File,
		},
		HotkeysFile: cfg.HotkeysFile,
	}

	return clientCfg, clientCfg.validate()
}

func boolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
