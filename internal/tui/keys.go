// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	quit         key.Binding
	togglePause  key.Binding
	pause        key.Binding
	resume       key.Binding
	mask         key.Binding
	editHotkeys  key.Binding
	resetHotkeys key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
}

func newKeyMap(h config.Hotkeys) keyMap {
	k := keyMap{
		quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
		togglePause:  key.NewBinding(key.WithKeys("p")),
		mask:         key.NewBinding(key.WithKeys("s")),
		editHotkeys:  key.NewBinding(key.WithKeys("h")),
		resetHotkeys: key.NewBinding(key.WithKeys("r")),
		enter:        key.NewBinding(key.WithKeys("enter")),
		esc:          key.NewBinding(key.WithKeys("esc")),
		tab:          key.NewBinding(key.WithKeys("tab")),
		backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	}
	k.bindHotkeys(h)
	return k
}

// bindHotkeys replaces the pause and resume bindings.
func (k *keyMap) bindHotkeys(h config.Hotkeys) {
	k.pause = key.NewBinding(key.WithKeys(chordKeys(h.Pause)...))
	k.resume = key.NewBinding(key.WithKeys(chordKeys(h.Resume)...))
}

// chordKeys returns the chord as written plus the spelling bubbletea uses
// for it, where "alt+" always comes first ("ctrl+alt+9" is reported as
// "alt+ctrl+9").
func chordKeys(chord string) []string {
	chord = strings.ToLower(strings.TrimSpace(chord))
	if chord == "" {
		return nil
	}

	keys := []string{chord}
	if canonical := canonicalChord(chord); canonical != chord {
		keys = append(keys, canonical)
	}
	return keys
}

func canonicalChord(chord string) string {
	if chord == "+" {
		return chord
	}

	parts := strings.Split(chord, "+")
	if len(parts) < 2 {
		return chord
	}

	hasAlt := false
	rest := make([]string, 0, len(parts))
	for _, p := range parts[:len(parts)-1] {
		if p == "alt" {
			hasAlt = true
			continue
		}
		rest = append(rest, p)
	}
	rest = append(rest, parts[len(parts)-1])

	if !hasAlt {
		return chord
	}
	return "alt+" + strings.Join(rest, "+")
}
