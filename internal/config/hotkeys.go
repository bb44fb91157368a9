// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"dario.cat/mergo"
)

// Hotkeys are the pause and resume key chords, in bubbles key notation
// ("ctrl+alt+9").
type Hotkeys struct {
	Pause  string `json:"hotkey_pause"`
	Resume string `json:"hotkey_resume"`
}

// DefaultHotkeys returns ctrl+alt+9 / ctrl+alt+0.
func DefaultHotkeys() Hotkeys {
	return Hotkeys{Pause: defaultPauseKey, Resume: defaultResumeKey}
}

// Normalize lowercases both chords and trims surrounding space.
func (h Hotkeys) Normalize() Hotkeys {
	return Hotkeys{
		Pause:  strings.ToLower(strings.TrimSpace(h.Pause)),
		Resume: strings.ToLower(strings.TrimSpace(h.Resume)),
	}
}

// Validate reports ErrInvalidHotkeys when a chord is empty, contains
// whitespace, has an empty part ("ctrl++") or both chords are equal.
func (h Hotkeys) Validate() error {
	for _, chord := range []string{h.Pause, h.Resume} {
		if err := validateChord(chord); err != nil {
			return err
		}
	}

	if h.Pause == h.Resume {
		return fmt.Errorf("%w: pause and resume are both %q", ErrInvalidHotkeys, h.Pause)
	}

	return nil
}

func validateChord(chord string) error {
	if chord == "" {
		return fmt.Errorf("%w: empty chord", ErrInvalidHotkeys)
	}
	if strings.ContainsAny(chord, " \t\r\n") {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidHotkeys, chord)
	}
	if chord == "+" {
		return nil
	}
	for _, part := range strings.Split(chord, "+") {
		if part == "" {
			return fmt.Errorf("%w: %q has an empty key", ErrInvalidHotkeys, chord)
		}
	}
	return nil
}

// HotkeyStore persists [Hotkeys] as a flat JSON object. Nothing else is
// stored in the file.
type HotkeyStore struct {
	mu   sync.Mutex
	path string
}

// NewHotkeyStore returns a store backed by path. An empty path selects
// [DefaultHotkeysPath].
func NewHotkeyStore(path string) *HotkeyStore {
	if path == "" {
		path = DefaultHotkeysPath()
	}
	return &HotkeyStore{path: path}
}

// Path returns the backing file location, possibly "".
func (s *HotkeyStore) Path() string {
	return s.path
}

// Load returns the saved hotkeys. A missing file yields the defaults and
// no error. An unreadable or invalid file yields the defaults and an
// error describing the problem. Missing fields are filled from the
// defaults.
func (s *HotkeyStore) Load() (Hotkeys, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := DefaultHotkeys()
	if s.path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("error reading hotkeys file: %w", err)
	}

	var saved Hotkeys
	if err = json.Unmarshal(data, &saved); err != nil {
		return defaults, fmt.Errorf("error decoding hotkeys file: %w", err)
	}

	saved = saved.Normalize()
	if err = mergo.Merge(&saved, defaults); err != nil {
		return defaults, fmt.Errorf("error merging hotkeys: %w", err)
	}

	if err = saved.Validate(); err != nil {
		return defaults, err
	}

	return saved, nil
}

// Save validates and writes h, creating the parent directory if needed.
// The file is replaced atomically.
func (s *HotkeyStore) Save(h Hotkeys) error {
	h = h.Normalize()
	if err := h.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrNoHotkeysPath
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding hotkeys: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".hotkeys-*.json")
	if err != nil {
		return fmt.Errorf("error creating temp hotkeys file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing hotkeys file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing hotkeys file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("error replacing hotkeys file: %w", err)
	}
	return nil
}
