// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// hotkeyForm edits the pause and resume chords.
type hotkeyForm struct {
	inputs []textinput.Model
	focus  int
	errMsg string
	saving bool
}

func newHotkeyForm(h config.Hotkeys) hotkeyForm {
	pauseInput := textinput.New()
	pauseInput.Placeholder = "ctrl+alt+9"
	pauseInput.CharLimit = 32
	pauseInput.Width = 24
	pauseInput.SetValue(h.Pause)
	pauseInput.Focus()

	resumeInput := textinput.New()
	resumeInput.Placeholder = "ctrl+alt+0"
	resumeInput.CharLimit = 32
	resumeInput.Width = 24
	resumeInput.SetValue(h.Resume)

	return hotkeyForm{inputs: []textinput.Model{pauseInput, resumeInput}}
}

func (f hotkeyForm) value() config.Hotkeys {
	return config.Hotkeys{
		Pause:  f.inputs[0].Value(),
		Resume: f.inputs[1].Value(),
	}.Normalize()
}

func (f *hotkeyForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *hotkeyForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f hotkeyForm) view() string {
	var b strings.Builder
	b.WriteString("Field   │ Chord\n")
	b.WriteString("────────┼──────────────────────────────\n")
	b.WriteString("Pause   │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Resume  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]")

	if f.saving {
		b.WriteString("\n\n[Saving...]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
	}
	return formBoxStyle.Render(b.String())
}

// updateForm handles input while the hotkey form is open.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.esc):
			m.editing = false
			return m, nil
		case key.Matches(keyMsg, m.keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, m.keys.backtab):
			m.form.focusPrev()
			return m, nil
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.enter):
			if m.form.saving {
				return m, nil
			}
			h := m.form.value()
			if err := h.Validate(); err != nil {
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.form.errMsg = ""
			m.form.saving = true
			return m, m.cmdSaveHotkeys(h, false)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *Model) cmdSaveHotkeys(h config.Hotkeys, reset bool) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return hotkeysSavedMsg{hotkeys: h, reset: reset}
		}
		return hotkeysSavedMsg{hotkeys: h, reset: reset, err: store.Save(h)}
	}
}
