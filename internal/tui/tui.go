// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive terminal display.
type TUI struct {
	events <-chan models.Event
	pause  PauseController
	store  HotkeyStore
	reveal bool
	info   models.AppBuildInfo
	log    *logger.Logger

	opts []tea.ProgramOption
}

// New creates the terminal display.
func New(events <-chan models.Event, pause PauseController, store HotkeyStore, reveal bool, info models.AppBuildInfo, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		events: events,
		pause:  pause,
		store:  store,
		reveal: reveal,
		info:   info,
		log:    log,
		opts:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the UI until the user quits, the event channel closes or ctx
// is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	hotkeys := config.DefaultHotkeys()
	if t.store != nil {
		var err error
		if hotkeys, err = t.store.Load(); err != nil {
			t.log.Warn().Err(err).Msg("hotkeys file unusable, using defaults")
		}
	}

	model := NewModel(t.events, t.pause, t.store, hotkeys, t.reveal, t.info)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)

	_, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil && ctx.Err() != nil && errors.Is(runErr, tea.ErrProgramKilled) {
		return nil
	}
	return runErr
}
