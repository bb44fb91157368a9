// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/otp"
	"github.com/MKhiriev/totp-clip/internal/store"
	"github.com/MKhiriev/totp-clip/models"
)

const defaultTickInterval = 250 * time.Millisecond

// RefreshScheduler keeps the clipboard code current for the active seed.
// Every tick it publishes the countdown and, once the time-step counter
// moves past the stored one, writes the next code.
type RefreshScheduler struct {
	clipboard Clipboard
	notifier  Notifier
	echo      *EchoFilter
	session   store.SessionStore
	events    *EventBus
	interval  time.Duration
	log       *logger.Logger
}

// NewRefreshScheduler wires a scheduler. A non-positive interval selects
// 250ms.
func NewRefreshScheduler(
	clipboard Clipboard,
	notifier Notifier,
	echo *EchoFilter,
	session store.SessionStore,
	events *EventBus,
	interval time.Duration,
	log *logger.Logger,
) *RefreshScheduler {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &RefreshScheduler{
		clipboard: clipboard,
		notifier:  notifier,
		echo:      echo,
		session:   session,
		events:    events,
		interval:  interval,
		log:       log,
	}
}

// Adopt makes desc the active seed as of now. write puts the code for the
// current step on the clipboard; it runs under the session lock, so no
// refresh for the previous seed can land after it. If write fails nothing
// is adopted.
func (s *RefreshScheduler) Adopt(desc models.SeedDescriptor, now time.Time, write func() error) error {
	counter := otp.Counter(now, desc.Period)
	boundary := otp.Boundary(counter, desc.Period)
	gen, err := s.session.Adopt(desc, counter, boundary, write)
	if err != nil {
		return err
	}

	s.log.Debug().
		Uint64("generation", gen).
		Uint64("counter", counter).
		Int("period", desc.Period).
		Msg("seed adopted")

	s.publishCountdown(now, desc, boundary)
	return nil
}

// Tick runs one scheduler step at now and reports whether a new code was
// written. With no active seed it does nothing.
func (s *RefreshScheduler) Tick(now time.Time) bool {
	snap, ok := s.session.Snapshot()
	if !ok {
		return false
	}

	desc := snap.Descriptor
	boundary := snap.Boundary
	current := otp.Counter(now, desc.Period)

	written := false
	if current != snap.Counter {
		written = s.refresh(now, snap, current)
		if written {
			boundary = otp.Boundary(current, desc.Period)
		}
	}

	s.publishCountdown(now, desc, boundary)
	return written
}

// Run ticks until ctx is cancelled.
func (s *RefreshScheduler) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Tick(time.Now())
		}
	}
}

func (s *RefreshScheduler) refresh(now time.Time, snap store.Snapshot, current uint64) bool {
	desc := snap.Descriptor

	code, err := otp.DeriveCode(desc.Secret, current, desc.Digits, desc.Algorithm)
	if err != nil {
		s.log.Error().Err(err).Msg("auto-refresh derivation failed")
		s.publishStatus(now, statusRefreshFailed(err))
		return false
	}

	boundary := otp.Boundary(current, desc.Period)
	advanced, err := s.session.Advance(snap.Generation, current, boundary, func() error {
		if err := s.clipboard.Write(code); err != nil {
			return err
		}
		s.echo.Remember(models.SourceRefresh, code)
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("auto-refresh clipboard write failed")
		s.publishStatus(now, statusRefreshFailed(err))
		return false
	}
	if !advanced {
		// a newer seed was adopted after the snapshot was taken
		s.log.Debug().Uint64("generation", snap.Generation).Msg("stale refresh discarded")
		return false
	}

	s.events.Publish(models.Event{
		Kind:       models.EventCodeWritten,
		At:         now,
		Code:       models.GeneratedCode{Code: code, Counter: current},
		Source:     models.SourceRefresh,
		Descriptor: desc,
		Remaining:  otp.Remaining(now, boundary, desc.Period),
		Status:     statusRefreshed(desc),
	})

	if err = s.notifier.Notify(notificationRefreshed(code)); err != nil {
		s.log.Debug().Err(err).Msg("notification not delivered")
	}
	return true
}

func (s *RefreshScheduler) publishCountdown(now time.Time, desc models.SeedDescriptor, boundary int64) {
	s.events.Publish(models.Event{
		Kind:       models.EventCountdown,
		At:         now,
		Descriptor: desc,
		Remaining:  otp.Remaining(now, boundary, desc.Period),
	})
}

func (s *RefreshScheduler) publishStatus(now time.Time, status string) {
	s.events.Publish(models.Event{Kind: models.EventStatus, At: now, Status: status})
}
