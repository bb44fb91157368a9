// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind classifies an [Event].
type EventKind int

const (
	// EventCodeWritten is published after a code was written to the
	// clipboard. Code, Source and Descriptor are set.
	EventCodeWritten EventKind = iota + 1
	// EventCountdown is published on every scheduler tick while a seed is
	// active. Remaining and Descriptor are set.
	EventCountdown
	// EventStatus carries a human-readable Status line.
	EventStatus
	// EventPaused is published when the pause flag changes. Paused is set.
	EventPaused
)

// String implements [fmt.Stringer].
func (k EventKind) String() string {
	switch k {
	case EventCodeWritten:
		return "code_written"
	case EventCountdown:
		return "countdown"
	case EventStatus:
		return "status"
	case EventPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Event is a display update sent from the background activities to the
// display collaborator.
type Event struct {
	Kind       EventKind
	At         time.Time
	Code       GeneratedCode
	Source     CodeSource
	Remaining  int
	Descriptor SeedDescriptor
	Status     string
	Paused     bool
}
