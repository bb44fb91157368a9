// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"

	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/service"
	"github.com/MKhiriev/totp-clip/models"
)

// Headless prints events as log lines. On unix SIGUSR1 toggles pause.
type Headless struct {
	events <-chan models.Event
	pause  PauseController
	out    *logger.Logger

	toggles <-chan os.Signal
}

// NewHeadless creates a display writing to out.
func NewHeadless(events <-chan models.Event, pause PauseController, out *logger.Logger) *Headless {
	if out == nil {
		out = logger.Nop()
	}
	return &Headless{events: events, pause: pause, out: out}
}

// Run consumes events until the channel closes or ctx is cancelled.
func (h *Headless) Run(ctx context.Context) error {
	toggles := h.toggles
	if toggles == nil {
		var stop func()
		toggles, stop = pauseSignals()
		defer stop()
	}

	h.out.Info().Msg(service.StatusWaiting)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-toggles:
			if h.pause != nil {
				h.pause.Toggle()
			}
		case ev, ok := <-h.events:
			if !ok {
				return nil
			}
			h.print(ev)
		}
	}
}

func (h *Headless) print(ev models.Event) {
	switch ev.Kind {
	case models.EventCodeWritten:
		h.out.Info().
			Str("code", ev.Code.Code).
			Str("source", ev.Source.String()).
			Str("algorithm", ev.Descriptor.Algorithm.String()).
			Int("digits", ev.Descriptor.Digits).
			Int("period", ev.Descriptor.Period).
			Int("remaining", ev.Remaining).
			Msg(ev.Status)
	case models.EventStatus:
		h.out.Info().Msg(ev.Status)
	case models.EventPaused:
		h.out.Warn().Bool("paused", ev.Paused).Msg(ev.Status)
	case models.EventCountdown:
		// the code line already carries the remaining time
	}
}
