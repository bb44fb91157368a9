// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the command line (without the program name).
//
// Flags:
//
//	-poll clipboard poll interval (e.g., "300ms")
//	-tick refresh scheduler interval (e.g., "250ms")
//	-headless log events instead of running the terminal UI
//	-notify enable desktop notifications
//	-reveal show the secret in clear text
//	-log log file path
//	-hotkeys hotkey file path
//	-c/-config json file path with configs
//
// Boolean flags with a true default are only recorded when given
// explicitly, so that -notify=false overrides the default.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, io.Discard)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var notify, reveal bool

	fs := flag.NewFlagSet("totpclip", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.DurationVar(&cfg.Workers.PollInterval, "poll", 0, "Clipboard poll interval (e.g., 300ms)")
	fs.DurationVar(&cfg.Workers.TickInterval, "tick", 0, "Refresh tick interval (e.g., 250ms)")
	fs.BoolVar(&cfg.Display.Headless, "headless", false, "Log events instead of running the terminal UI")
	fs.BoolVar(&notify, "notify", true, "Enable desktop notifications")
	fs.BoolVar(&reveal, "reveal", true, "Show the secret in clear text")
	fs.StringVar(&cfg.Logging.File, "log", "", "Log file path")
	fs.StringVar(&cfg.HotkeysFile, "hotkeys", "", "Hotkey file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "notify":
			cfg.Display.Notify = &notify
		case "reveal":
			cfg.Display.RevealSecret = &reveal
		}
	})

	return cfg, nil
}
