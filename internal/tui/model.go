// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/internal/service"
	"github.com/MKhiriev/totp-clip/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	barWidth       = 30
	noticeChords   = "ctrl+alt chords need a terminal that reports them; p always toggles"
	noticeSaved    = "hotkeys saved"
	noticeReset    = "hotkeys reset to defaults"
	noticeNotSaved = "hotkeys not saved: "
)

// Model is the bubbletea model of the main screen.
type Model struct {
	events <-chan models.Event
	pause  PauseController
	store  HotkeyStore
	info   models.AppBuildInfo

	keys    keyMap
	hotkeys config.Hotkeys

	hasSeed   bool
	code      string
	source    models.CodeSource
	desc      models.SeedDescriptor
	remaining int
	status    string
	paused    bool
	reveal    bool
	notice    string

	editing bool
	form    hotkeyForm

	quitting bool
}

// NewModel builds the main screen. reveal selects whether the secret is
// shown in clear text initially.
func NewModel(events <-chan models.Event, pause PauseController, store HotkeyStore, hotkeys config.Hotkeys, reveal bool, info models.AppBuildInfo) *Model {
	paused := false
	if pause != nil {
		paused = pause.Paused()
	}
	return &Model{
		events:  events,
		pause:   pause,
		store:   store,
		info:    info,
		keys:    newKeyMap(hotkeys),
		hotkeys: hotkeys,
		status:  service.StatusWaiting,
		paused:  paused,
		reveal:  reveal,
	}
}

// Init implements [tea.Model]. Starts listening on the event channel.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), textinput.Blink)
}

// Update implements [tea.Model].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.apply(models.Event(msg))
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit
	case hotkeysSavedMsg:
		m.form.saving = false
		if msg.err != nil {
			m.notice = noticeNotSaved + msg.err.Error()
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.hotkeys = msg.hotkeys
		m.keys.bindHotkeys(msg.hotkeys)
		m.editing = false
		m.notice = noticeSaved
		if msg.reset {
			m.notice = noticeReset
		}
		return m, nil
	}

	if m.editing {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.pause):
		m.setPaused(true)
	case key.Matches(msg, m.keys.resume):
		m.setPaused(false)
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.togglePause):
		if m.pause != nil {
			m.paused = m.pause.Toggle()
		}
	case key.Matches(msg, m.keys.mask):
		m.reveal = !m.reveal
	case key.Matches(msg, m.keys.editHotkeys):
		m.form = newHotkeyForm(m.hotkeys)
		m.editing = true
		m.notice = ""
		return m, textinput.Blink
	case key.Matches(msg, m.keys.resetHotkeys):
		return m, m.cmdSaveHotkeys(config.DefaultHotkeys(), true)
	}
	return m, nil
}

func (m *Model) setPaused(paused bool) {
	if m.pause == nil {
		return
	}
	if paused {
		m.pause.Pause()
	} else {
		m.pause.Resume()
	}
	m.paused = paused
}

func (m *Model) apply(ev models.Event) {
	switch ev.Kind {
	case models.EventCodeWritten:
		m.hasSeed = true
		m.code = ev.Code.Code
		m.source = ev.Source
		m.desc = ev.Descriptor
		m.remaining = ev.Remaining
		if ev.Status != "" {
			m.status = ev.Status
		}
	case models.EventCountdown:
		if m.hasSeed {
			m.remaining = ev.Remaining
		}
	case models.EventStatus:
		m.status = ev.Status
	case models.EventPaused:
		m.paused = ev.Paused
		if ev.Status != "" {
			m.status = ev.Status
		}
	}
}

// View implements [tea.Model].
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.hasSeed {
		b.WriteString(row("Code", codeStyle.Render(formatCode(m.code))))
		b.WriteString("\n")
		b.WriteString(row("", countdownBar(m.remaining, m.desc.Period, barWidth)))
		b.WriteString("\n")
		b.WriteString(row("", countdownLine(m.remaining, m.desc.Algorithm)))
		b.WriteString("\n")
		b.WriteString(row("Params", fmt.Sprintf("digits %d · period %ds · source %s", m.desc.Digits, m.desc.Period, m.source)))
		b.WriteString("\n")
		if m.desc.Issuer != "" || m.desc.Account != "" {
			b.WriteString(row("Account", valueOrDash(m.desc.Issuer)+" / "+valueOrDash(m.desc.Account)))
			b.WriteString("\n")
		}
		b.WriteString(row("Secret", m.secretText()))
		b.WriteString("\n")
	} else {
		b.WriteString(row("Code", "-"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(row("Status", m.status))
	b.WriteString("\n")
	b.WriteString(row("Monitor", m.monitorText()))
	b.WriteString("\n")
	b.WriteString(row("Hotkeys", fmt.Sprintf("pause %s · resume %s", m.hotkeys.Pause, m.hotkeys.Resume)))
	if hasCtrlAlt(m.hotkeys) {
		b.WriteString("\n")
		b.WriteString(row("", helpStyle.Render(noticeChords)))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(row("", helpStyle.Render(m.notice)))
	}

	if m.editing {
		b.WriteString("\n\n")
		b.WriteString(m.form.view())
		return renderPage("TOTP CLIP HELPER", b.String(), "esc: cancel │ tab: next field │ enter: save", m.info.String())
	}

	return renderPage("TOTP CLIP HELPER", b.String(),
		"p: pause/resume │ s: mask secret │ h: edit hotkeys │ r: reset hotkeys │ q: quit", m.info.String())
}

// hasCtrlAlt reports whether a chord combines ctrl and alt, which most
// terminals cannot send.
func hasCtrlAlt(h config.Hotkeys) bool {
	for _, chord := range []string{h.Pause, h.Resume} {
		c := strings.ToLower(chord)
		if strings.Contains(c, "ctrl+") && strings.Contains(c, "alt+") {
			return true
		}
	}
	return false
}

func (m *Model) secretText() string {
	if m.reveal {
		return valueOrDash(m.desc.SecretText)
	}
	return valueOrDash(m.desc.MaskedSecret())
}

func (m *Model) monitorText() string {
	if m.paused {
		return pausedStyle.Render("paused")
	}
	return "active"
}
