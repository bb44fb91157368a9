// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"sync"

	"github.com/MKhiriev/totp-clip/models"
)

// Snapshot is a consistent copy of the active session slot.
type Snapshot struct {
	// Descriptor is the active seed.
	Descriptor models.SeedDescriptor

	// Counter is the period counter of the last code written for
	// Descriptor.
	Counter uint64

	// Boundary is the Unix timestamp at which the period identified by
	// Counter began.
	Boundary int64

	// Generation increases by one on every adoption. It lets a reader that
	// computed an update from a snapshot detect that the descriptor was
	// replaced in the meantime.
	Generation uint64
}

// Session is the in-memory, single-slot holder of the active seed and its
// period counters. It is safe for concurrent use.
//
// Nothing in Session is ever written to disk; the slot is cleared only when
// the process exits.
type Session struct {
	mu         sync.RWMutex
	active     bool
	snapshot   Snapshot
	generation uint64
}

// NewSession returns an empty [Session].
func NewSession() *Session {
	return &Session{}
}

// Adopt implements [SessionStore]. It replaces the active descriptor as a
// whole and records counter and boundary for it. The secret is copied so
// callers may reuse their buffer.
//
// write, if not nil, runs under the session lock before the slot changes.
// If it fails the slot is left as it was and its error is returned.
func (s *Session) Adopt(desc models.SeedDescriptor, counter uint64, boundary int64, write func() error) (uint64, error) {
	desc.Secret = bytes.Clone(desc.Secret)

	s.mu.Lock()
	defer s.mu.Unlock()

	if write != nil {
		if err := write(); err != nil {
			return s.generation, err
		}
	}

	s.generation++
	s.active = true
	s.snapshot = Snapshot{
		Descriptor: desc,
		Counter:    counter,
		Boundary:   boundary,
		Generation: s.generation,
	}

	return s.generation, nil
}

// Snapshot implements [SessionStore]. ok is false while no seed has been
// adopted.
func (s *Session) Snapshot() (snap Snapshot, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot, s.active
}

// Advance implements [SessionStore]. It moves the counters of the active
// descriptor forward, but only if generation still identifies it. Returns
// false, without calling write, when a newer descriptor was adopted after
// the caller took its snapshot.
//
// write, if not nil, runs under the session lock after the generation
// check. If it fails the counters are left as they were.
func (s *Session) Advance(generation, counter uint64, boundary int64, write func() error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.snapshot.Generation != generation {
		return false, nil
	}

	if write != nil {
		if err := write(); err != nil {
			return false, err
		}
	}

	s.snapshot.Counter = counter
	s.snapshot.Boundary = boundary
	return true, nil
}
