// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/store"
)

// ClientServices bundles the collaborators of one helper run. The poller
// and scheduler share the session, echo filter and event bus.
type ClientServices struct {
	Events    *EventBus
	Pause     *PauseSwitch
	Echo      *EchoFilter
	Scheduler *RefreshScheduler
	Poller    *ClipboardPoller
}

// NewClientServices wires the core around clipboard and notifier.
func NewClientServices(clipboard Clipboard, notifier Notifier, cfg config.ClientWorkers, log *logger.Logger) (*ClientServices, error) {
	if clipboard == nil {
		return nil, fmt.Errorf("%w: clipboard", ErrNilCollaborator)
	}
	if notifier == nil {
		return nil, fmt.Errorf("%w: notifier", ErrNilCollaborator)
	}
	if log == nil {
		log = logger.Nop()
	}

	events := NewEventBus(defaultEventBuffer)
	pause := NewPauseSwitch(events)
	echo := NewEchoFilter()
	session := store.NewSession()

	scheduler := NewRefreshScheduler(clipboard, notifier, echo, session, events,
		cfg.TickInterval, log.Named("scheduler"))
	poller := NewClipboardPoller(clipboard, notifier, echo, pause, scheduler, events,
		cfg.PollInterval, log.Named("poller"))

	return &ClientServices{
		Events:    events,
		Pause:     pause,
		Echo:      echo,
		Scheduler: scheduler,
		Poller:    poller,
	}, nil
}

// Workers returns the background activities in start order.
func (s *ClientServices) Workers() []Worker {
	return []Worker{s.Poller, s.Scheduler}
}
