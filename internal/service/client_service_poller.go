// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/totp-clip/internal/extractor"
	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/otp"
	"github.com/MKhiriev/totp-clip/models"
)

const defaultPollInterval = 300 * time.Millisecond

// Adopter takes ownership of a freshly recognized seed. write puts the
// seed's first code on the clipboard; the seed is adopted only if it
// succeeds.
type Adopter interface {
	Adopt(desc models.SeedDescriptor, now time.Time, write func() error) error
}

// ClipboardPoller watches the clipboard for new text and turns recognized
// secrets into codes. Poll is not safe for concurrent use; Run calls it
// from a single goroutine.
type ClipboardPoller struct {
	clipboard Clipboard
	notifier  Notifier
	echo      *EchoFilter
	pause     *PauseSwitch
	adopter   Adopter
	events    *EventBus
	interval  time.Duration
	log       *logger.Logger

	lastSeen string
	seen     bool
	readErr  bool
}

// NewClipboardPoller wires a poller. A non-positive interval selects 300ms.
func NewClipboardPoller(
	clipboard Clipboard,
	notifier Notifier,
	echo *EchoFilter,
	pause *PauseSwitch,
	adopter Adopter,
	events *EventBus,
	interval time.Duration,
	log *logger.Logger,
) *ClipboardPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &ClipboardPoller{
		clipboard: clipboard,
		notifier:  notifier,
		echo:      echo,
		pause:     pause,
		adopter:   adopter,
		events:    events,
		interval:  interval,
		log:       log,
	}
}

// Poll inspects the clipboard once and reports whether a code was written.
func (p *ClipboardPoller) Poll(now time.Time) bool {
	text, err := p.clipboard.Read()
	if err != nil {
		// log the first failure of a run only
		if !p.readErr {
			p.readErr = true
			p.log.Warn().Err(err).Msg("clipboard read failed")
		}
		p.publishStatus(now, statusClipboardUnavailable(err))
		return false
	}
	p.readErr = false

	if p.seen && text == p.lastSeen {
		return false
	}
	prev, prevSeen := p.lastSeen, p.seen
	p.lastSeen, p.seen = text, true

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || p.echo.IsEcho(trimmed) {
		return false
	}

	if p.pause.Paused() {
		p.publishStatus(now, StatusPaused)
		return false
	}

	desc, err := extractor.Extract(trimmed)
	if err != nil {
		if errors.Is(err, extractor.ErrNotRecognized) {
			p.publishStatus(now, StatusNotRecognized)
		} else {
			p.log.Info().Err(err).Msg("clipboard text looked like a secret but could not be used")
			p.publishStatus(now, statusGenerationFailed(err))
		}
		return false
	}

	code, err := otp.TOTP(desc, now)
	if err != nil {
		p.log.Error().Err(err).Msg("code derivation failed")
		p.publishStatus(now, statusGenerationFailed(err))
		return false
	}

	err = p.adopter.Adopt(desc, now, func() error {
		if err := p.clipboard.Write(code.Code); err != nil {
			return err
		}
		p.echo.Remember(models.SourcePoller, code.Code)
		return nil
	})
	if err != nil {
		p.log.Warn().Err(err).Msg("clipboard write failed")
		p.publishStatus(now, statusGenerationFailed(err))
		// retry the same text on the next poll
		p.lastSeen, p.seen = prev, prevSeen
		return false
	}

	p.events.Publish(models.Event{
		Kind:       models.EventCodeWritten,
		At:         now,
		Code:       code,
		Source:     models.SourcePoller,
		Descriptor: desc,
		Remaining:  otp.Remaining(now, otp.Boundary(code.Counter, desc.Period), desc.Period),
		Status:     statusWritten(desc),
	})

	p.log.Info().
		Str("algorithm", string(desc.Algorithm)).
		Int("digits", desc.Digits).
		Int("period", desc.Period).
		Str("issuer", desc.Issuer).
		Msg("secret recognized, code written")

	if err = p.notifier.Notify(notificationCopied(code.Code, desc)); err != nil {
		p.log.Debug().Err(err).Msg("notification not delivered")
	}
	return true
}

// Run polls immediately and then on every interval until ctx is cancelled.
func (p *ClipboardPoller) Run(ctx context.Context) {
	p.Poll(time.Now())

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.Poll(time.Now())
		}
	}
}

func (p *ClipboardPoller) publishStatus(now time.Time, status string) {
	p.events.Publish(models.Event{Kind: models.EventStatus, At: now, Status: status})
}
