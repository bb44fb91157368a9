// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/internal/service"
	"github.com/MKhiriev/totp-clip/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakePause struct {
	paused  bool
	pauses  int
	resumes int
	toggles int
}

func (f *fakePause) Pause()       { f.pauses++; f.paused = true }
func (f *fakePause) Resume()      { f.resumes++; f.paused = false }
func (f *fakePause) Paused() bool { return f.paused }
func (f *fakePause) Toggle() bool {
	f.toggles++
	f.paused = !f.paused
	return f.paused
}

type fakeStore struct {
	saved   []config.Hotkeys
	saveErr error
}

func (f *fakeStore) Load() (config.Hotkeys, error) { return config.DefaultHotkeys(), nil }
func (f *fakeStore) Save(h config.Hotkeys) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, h)
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *fakePause, *fakeStore) {
	t.Helper()
	pause := &fakePause{}
	store := &fakeStore{}
	m := NewModel(make(chan models.Event), pause, store, config.DefaultHotkeys(), true, models.NewAppBuildInfo("1.0.0", "", ""))
	return m, pause, store
}

func testSeed() models.SeedDescriptor {
	return models.SeedDescriptor{
		Secret:     []byte("12345678901234567890"),
		SecretText: "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
		Digits:     6,
		Period:     30,
		Algorithm:  models.AlgorithmSHA256,
		Issuer:     "ACME",
		Account:    "alice",
	}
}

func written(code string, remaining int) eventMsg {
	return eventMsg(models.Event{
		Kind:       models.EventCodeWritten,
		Code:       models.GeneratedCode{Code: code},
		Source:     models.SourcePoller,
		Descriptor: testSeed(),
		Remaining:  remaining,
		Status:     "code copied to clipboard (algo=SHA256, period=30s)",
	})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ── events ────────────────────────────────────────────────────────────────────

func TestModel_InitialView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "TOTP CLIP HELPER")
	assert.Contains(t, view, service.StatusWaiting)
	assert.Contains(t, view, "pause ctrl+alt+9 · resume ctrl+alt+0")
	assert.Contains(t, view, "version 1.0.0")
	assert.Contains(t, view, "p always toggles")
}

func TestModel_ChordNoteOnlyForCtrlAlt(t *testing.T) {
	hotkeys := config.Hotkeys{Pause: "f9", Resume: "f10"}
	m := NewModel(make(chan models.Event), &fakePause{}, &fakeStore{}, hotkeys, true, models.NewAppBuildInfo("1.0.0", "", ""))

	view := m.View()
	assert.Contains(t, view, "pause f9 · resume f10")
	assert.NotContains(t, view, "p always toggles")
}

func TestModel_CodeWrittenEvent(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(written("123456", 17))
	require.NotNil(t, cmd, "keeps listening for events")

	view := m.View()
	assert.Contains(t, view, "123 456")
	assert.Contains(t, view, "remaining 17s | algorithm SHA256")
	assert.Contains(t, view, "digits 6 · period 30s · source poller")
	assert.Contains(t, view, "ACME / alice")
	assert.Contains(t, view, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	assert.Contains(t, view, "algo=SHA256")
}

func TestModel_CountdownEvent(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(eventMsg(models.Event{Kind: models.EventCountdown, Remaining: 9}))
	assert.Equal(t, 0, m.remaining, "countdown without a seed is ignored")

	m.Update(written("123456", 17))
	m.Update(eventMsg(models.Event{Kind: models.EventCountdown, Remaining: 9}))
	assert.Contains(t, m.View(), "remaining 09s")
}

func TestModel_StatusAndPausedEvents(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(eventMsg(models.Event{Kind: models.EventStatus, Status: "no 2FA secret recognized, waiting…"}))
	assert.Contains(t, m.View(), "no 2FA secret recognized")

	m.Update(eventMsg(models.Event{Kind: models.EventPaused, Paused: true, Status: "monitoring paused"}))
	assert.True(t, m.paused)
	assert.Contains(t, m.View(), "monitoring paused")
}

func TestModel_EventsClosedQuits(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(eventsClosedMsg{})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan models.Event, 1)
	ch <- models.Event{Kind: models.EventStatus, Status: "x"}

	msg := waitForEvent(ch)()
	ev, ok := msg.(eventMsg)
	require.True(t, ok)
	assert.Equal(t, "x", ev.Status)

	close(ch)
	assert.IsType(t, eventsClosedMsg{}, waitForEvent(ch)())
}

// ── keys ──────────────────────────────────────────────────────────────────────

func TestModel_TogglePauseKey(t *testing.T) {
	m, pause, _ := newTestModel(t)

	m.Update(runeKey("p"))
	assert.Equal(t, 1, pause.toggles)
	assert.True(t, m.paused)
	assert.Contains(t, m.View(), "paused")

	m.Update(runeKey("p"))
	assert.False(t, m.paused)
}

func TestModel_HotkeyBindings(t *testing.T) {
	m, pause, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9"), Alt: true})
	assert.Equal(t, 0, pause.pauses, "alt+9 is not ctrl+alt+9")

	m.hotkeys = config.Hotkeys{Pause: "f9", Resume: "f10"}
	m.keys.bindHotkeys(m.hotkeys)

	m.Update(tea.KeyMsg{Type: tea.KeyF9})
	assert.Equal(t, 1, pause.pauses)
	assert.True(t, m.paused)

	m.Update(tea.KeyMsg{Type: tea.KeyF10})
	assert.Equal(t, 1, pause.resumes)
	assert.False(t, m.paused)
}

func TestModel_MaskSecretKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(written("123456", 17))

	m.Update(runeKey("s"))
	view := m.View()
	assert.NotContains(t, view, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
	assert.Contains(t, view, "GEZD…QOJQ")
	assert.Contains(t, view, "len=32")

	m.Update(runeKey("s"))
	assert.Contains(t, m.View(), "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		m, _, _ := newTestModel(t)
		_, cmd := m.Update(msg)
		assert.True(t, isQuit(cmd), msg.String())
	}
}

// ── hotkey form ───────────────────────────────────────────────────────────────

func TestModel_EditHotkeys_Save(t *testing.T) {
	m, pause, store := newTestModel(t)

	m.Update(runeKey("h"))
	require.True(t, m.editing)
	assert.Contains(t, m.View(), "Resume")

	m.form.inputs[0].SetValue("F9")
	m.form.inputs[1].SetValue("f10")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.form.saving)

	m.Update(cmd())
	require.Len(t, store.saved, 1)
	assert.Equal(t, config.Hotkeys{Pause: "f9", Resume: "f10"}, store.saved[0])
	assert.False(t, m.editing)
	assert.Contains(t, m.View(), "hotkeys saved")
	assert.Contains(t, m.View(), "pause f9 · resume f10")

	m.Update(tea.KeyMsg{Type: tea.KeyF9})
	assert.Equal(t, 1, pause.pauses, "new binding is active")
}

func TestModel_EditHotkeys_Invalid(t *testing.T) {
	m, _, store := newTestModel(t)

	m.Update(runeKey("h"))
	m.form.inputs[0].SetValue("f9")
	m.form.inputs[1].SetValue("f9")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.editing)
	assert.Contains(t, m.form.errMsg, "invalid hotkeys")
	assert.Empty(t, store.saved)
}

func TestModel_EditHotkeys_SaveError(t *testing.T) {
	m, _, store := newTestModel(t)
	store.saveErr = errors.New("read-only file system")

	m.Update(runeKey("h"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.True(t, m.editing, "form stays open")
	assert.Contains(t, m.View(), "read-only file system")
	assert.Equal(t, config.DefaultHotkeys(), m.hotkeys)
}

func TestModel_EditHotkeys_Cancel(t *testing.T) {
	m, pause, _ := newTestModel(t)

	m.Update(runeKey("h"))
	m.Update(runeKey("p"))
	assert.Equal(t, 0, pause.toggles, "keys go to the form while editing")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
}

func TestModel_EditHotkeys_Focus(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.Update(runeKey("h"))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.form.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.form.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.form.focus)
}

func TestModel_ResetHotkeys(t *testing.T) {
	m, _, store := newTestModel(t)
	m.hotkeys = config.Hotkeys{Pause: "f1", Resume: "f2"}
	m.keys.bindHotkeys(m.hotkeys)

	_, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Len(t, store.saved, 1)
	assert.Equal(t, config.DefaultHotkeys(), store.saved[0])
	assert.Equal(t, config.DefaultHotkeys(), m.hotkeys)
	assert.True(t, strings.Contains(m.View(), "hotkeys reset to defaults"))
}
