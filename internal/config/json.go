// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the -c configuration file.
type StructuredJSONConfig struct {
	Workers struct {
		PollInterval Duration `json:"poll_interval"`
		TickInterval Duration `json:"tick_interval"`
	} `json:"workers,omitempty"`

	Display struct {
		Headless     bool  `json:"headless"`
		Notify       *bool `json:"notify,omitempty"`
		RevealSecret *bool `json:"reveal_secret,omitempty"`
	} `json:"display,omitempty"`

	Logging struct {
		File string `json:"file"`
	} `json:"logging,omitempty"`

	HotkeysFile string `json:"hotkeys_file,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
			TickInterval: time.Duration(jsonCfg.Workers.TickInterval),
		},
		Display: Display{
			Headless:     jsonCfg.Display.Headless,
			Notify:       jsonCfg.Display.Notify,
			RevealSecret: jsonCfg.Display.RevealSecret,
		},
		Logging: Logging{
			File: jsonCfg.Logging.File,
		},
		HotkeysFile:  jsonCfg.HotkeysFile,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
