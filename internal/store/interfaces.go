// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory session state shared by the clipboard
// poller and the refresh scheduler.
package store

import "github.com/MKhiriev/totp-clip/models"

// SessionStore is the single-writer slot for the active seed.
//
// Adopt is only ever called from the poller goroutine. The scheduler reads
// through Snapshot and moves the counters with Advance; it never replaces
// the descriptor. The write callbacks of Adopt and Advance hold the
// session lock, so a clipboard write and the state change it belongs to
// are never interleaved with the other goroutine's.
type SessionStore interface {
	// Adopt runs write and, if it succeeds, makes desc the active
	// descriptor with the given period counter and boundary timestamp.
	// Returns the new generation.
	Adopt(desc models.SeedDescriptor, counter uint64, boundary int64, write func() error) (uint64, error)

	// Snapshot returns a copy of the active slot. ok is false if nothing
	// has been adopted yet.
	Snapshot() (snap Snapshot, ok bool)

	// Advance records a new counter and boundary for the descriptor
	// identified by generation, after write succeeds. Returns false, and
	// skips write, if that descriptor is no longer active.
	Advance(generation, counter uint64, boundary int64, write func() error) (bool, error)
}
