// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-poll", "100ms",
		"-tick", "500ms",
		"-headless",
		"-notify=false",
		"-log", "app.log",
		"-hotkeys", "keys.json",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.Workers.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.TickInterval)
	assert.True(t, cfg.Display.Headless)
	require.NotNil(t, cfg.Display.Notify)
	assert.False(t, *cfg.Display.Notify)
	assert.Nil(t, cfg.Display.RevealSecret, "unset flag must not override other layers")
	assert.Equal(t, "app.log", cfg.Logging.File)
	assert.Equal(t, "keys.json", cfg.HotkeysFile)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-unknown"}},
		{"bad duration", []string{"-poll", "fast"}},
		{"missing value", []string{"-log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, err := parseFlags(tt.args, &out)
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.NotEmpty(t, out.String(), "flag set prints usage on error")
		})
	}
}
