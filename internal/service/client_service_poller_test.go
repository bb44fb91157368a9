// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/totp-clip/internal/extractor"
	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/mock"
	"github.com/MKhiriev/totp-clip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	uriText  = "otpauth://totp/ACME:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=ACME&digits=8&period=60"
	bareText = "JBSW Y3DP EHPK 3PXP"
)

type adoptSpy struct {
	calls []models.SeedDescriptor
	at    []time.Time
}

// Adopt runs write the way the session does and records the seed only when
// it succeeds.
func (a *adoptSpy) Adopt(desc models.SeedDescriptor, now time.Time, write func() error) error {
	if err := write(); err != nil {
		return err
	}
	a.calls = append(a.calls, desc)
	a.at = append(a.at, now)
	return nil
}

type pollerFixture struct {
	clipboard *mock.MockClipboard
	notifier  *mock.MockNotifier
	echo      *EchoFilter
	pause     *PauseSwitch
	adopter   *adoptSpy
	events    *EventBus
	poller    *ClipboardPoller
}

func newPollerFixture(t *testing.T) *pollerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &pollerFixture{
		clipboard: mock.NewMockClipboard(ctrl),
		notifier:  mock.NewMockNotifier(ctrl),
		echo:      NewEchoFilter(),
		adopter:   &adoptSpy{},
		events:    NewEventBus(256),
	}
	f.pause = NewPauseSwitch(f.events)
	f.poller = NewClipboardPoller(f.clipboard, f.notifier, f.echo, f.pause, f.adopter, f.events, 0, logger.Nop())
	return f
}

func expectedCode(t *testing.T, text string, at time.Time) string {
	t.Helper()
	desc, err := extractor.Extract(text)
	require.NoError(t, err)
	return codeAt(t, desc, at)
}

func statuses(events []models.Event) []string {
	var out []string
	for _, ev := range eventsOf(events, models.EventStatus) {
		out = append(out, ev.Status)
	}
	return out
}

// ── recognition ──────────────────────────────────────────────────────────────

func TestClipboardPoller_Poll_OTPAuthURI(t *testing.T) {
	f := newPollerFixture(t)
	want := expectedCode(t, uriText, t0)
	require.Len(t, want, 8)

	f.clipboard.EXPECT().Read().Return(uriText, nil)
	f.clipboard.EXPECT().Write(want).Return(nil)
	f.notifier.EXPECT().Notify("copied code " + want + " (60s)").Return(nil)

	assert.True(t, f.poller.Poll(t0))

	require.Len(t, f.adopter.calls, 1)
	desc := f.adopter.calls[0]
	assert.Equal(t, "ACME", desc.Issuer)
	assert.Equal(t, "alice@example.com", desc.Account)
	assert.Equal(t, 60, desc.Period)
	assert.Equal(t, t0, f.adopter.at[0])
	assert.True(t, f.echo.IsEcho(want))

	written := eventsOf(drain(f.events), models.EventCodeWritten)
	require.Len(t, written, 1)
	assert.Equal(t, models.SourcePoller, written[0].Source)
	assert.Equal(t, want, written[0].Code.Code)
	assert.Equal(t, 40, written[0].Remaining)
	assert.Equal(t, "code copied to clipboard (algo=SHA1, period=60s)", written[0].Status)
}

func TestClipboardPoller_Poll_BareSecret(t *testing.T) {
	f := newPollerFixture(t)
	want := expectedCode(t, bareText, t0)

	f.clipboard.EXPECT().Read().Return("  "+bareText+"\n", nil)
	f.clipboard.EXPECT().Write(want).Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(nil)

	assert.True(t, f.poller.Poll(t0))
	require.Len(t, f.adopter.calls, 1)
	assert.Equal(t, 6, f.adopter.calls[0].Digits)
}

func TestClipboardPoller_Poll_NotRecognized(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose", "hello world"},
		{"short token", "ABC"},
		{"link", "https://example.com/JBSWY3DPEHPK3PXP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPollerFixture(t)
			f.clipboard.EXPECT().Read().Return(tt.text, nil)

			assert.False(t, f.poller.Poll(t0))
			assert.Empty(t, f.adopter.calls)
			assert.Equal(t, []string{StatusNotRecognized}, statuses(drain(f.events)))
		})
	}
}

func TestClipboardPoller_Poll_EmptyClipboardIsQuiet(t *testing.T) {
	f := newPollerFixture(t)
	f.clipboard.EXPECT().Read().Return(" \n", nil)

	assert.False(t, f.poller.Poll(t0))
	assert.Empty(t, drain(f.events))
}

func TestClipboardPoller_Poll_DecodeFailure(t *testing.T) {
	f := newPollerFixture(t)
	f.clipboard.EXPECT().Read().Return("AAAAAAAAAAAAAAAAA", nil) // 17 symbols

	assert.False(t, f.poller.Poll(t0))

	got := statuses(drain(f.events))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "code generation failed")
	assert.Empty(t, f.adopter.calls)
}

// ── echo and change detection ───────────────────────────────────────────────

func TestClipboardPoller_Poll_IgnoresEcho(t *testing.T) {
	f := newPollerFixture(t)
	f.echo.Remember(models.SourcePoller, "123456")

	f.clipboard.EXPECT().Read().Return("123456", nil)

	assert.False(t, f.poller.Poll(t0))
	assert.Empty(t, drain(f.events))
}

func TestClipboardPoller_Poll_IgnoresOwnWriteOnNextPoll(t *testing.T) {
	f := newPollerFixture(t)
	want := expectedCode(t, bareText, t0)

	gomock.InOrder(
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(want).Return(nil),
		f.clipboard.EXPECT().Read().Return(want, nil),
	)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(nil)

	assert.True(t, f.poller.Poll(t0))
	drain(f.events)

	assert.False(t, f.poller.Poll(t0.Add(300*time.Millisecond)))
	assert.Empty(t, drain(f.events))
	assert.Len(t, f.adopter.calls, 1)
}

func TestClipboardPoller_Poll_UnchangedTextIsNoop(t *testing.T) {
	f := newPollerFixture(t)
	f.clipboard.EXPECT().Read().Return("hello world", nil).Times(3)

	f.poller.Poll(t0)
	drain(f.events)

	f.poller.Poll(t0.Add(time.Second))
	f.poller.Poll(t0.Add(2 * time.Second))
	assert.Empty(t, drain(f.events))
}

func TestClipboardPoller_Poll_SameSecretCopiedAgainAfterOtherText(t *testing.T) {
	f := newPollerFixture(t)

	gomock.InOrder(
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(gomock.Any()).Return(nil),
		f.clipboard.EXPECT().Read().Return("unrelated", nil),
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(gomock.Any()).Return(nil),
	)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(nil).Times(2)

	assert.True(t, f.poller.Poll(t0))
	assert.False(t, f.poller.Poll(t0.Add(time.Second)))
	assert.True(t, f.poller.Poll(t0.Add(2*time.Second)))
	assert.Len(t, f.adopter.calls, 2)
}

// ── pause ────────────────────────────────────────────────────────────────────

func TestClipboardPoller_Poll_Paused(t *testing.T) {
	f := newPollerFixture(t)
	f.pause.Pause()
	drain(f.events)

	f.clipboard.EXPECT().Read().Return(bareText, nil)

	assert.False(t, f.poller.Poll(t0))
	assert.Empty(t, f.adopter.calls)
	assert.Equal(t, []string{StatusPaused}, statuses(drain(f.events)))
}

func TestClipboardPoller_Poll_ResumeDoesNotReplayUnchangedText(t *testing.T) {
	f := newPollerFixture(t)
	f.pause.Pause()

	f.clipboard.EXPECT().Read().Return(bareText, nil).Times(2)

	f.poller.Poll(t0)
	f.pause.Resume()

	assert.False(t, f.poller.Poll(t0.Add(time.Second)))
	assert.Empty(t, f.adopter.calls)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestClipboardPoller_Poll_ReadError(t *testing.T) {
	f := newPollerFixture(t)
	want := expectedCode(t, bareText, t0)

	gomock.InOrder(
		f.clipboard.EXPECT().Read().Return("", errors.New("no display")),
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(want).Return(nil),
	)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(nil)

	assert.False(t, f.poller.Poll(t0))
	got := statuses(drain(f.events))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "no display")

	assert.True(t, f.poller.Poll(t0))
}

func TestClipboardPoller_Poll_WriteFailureRetriesSameText(t *testing.T) {
	f := newPollerFixture(t)

	gomock.InOrder(
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(gomock.Any()).Return(errors.New("clipboard locked")),
		f.clipboard.EXPECT().Read().Return(bareText, nil),
		f.clipboard.EXPECT().Write(gomock.Any()).Return(nil),
	)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(nil)

	assert.False(t, f.poller.Poll(t0))
	assert.Empty(t, f.adopter.calls)
	assert.False(t, f.echo.IsEcho(expectedCode(t, bareText, t0)))

	assert.True(t, f.poller.Poll(t0.Add(300*time.Millisecond)))
	assert.Len(t, f.adopter.calls, 1)
}

func TestClipboardPoller_Poll_NotifyErrorIgnored(t *testing.T) {
	f := newPollerFixture(t)

	f.clipboard.EXPECT().Read().Return(bareText, nil)
	f.clipboard.EXPECT().Write(gomock.Any()).Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any()).Return(errors.New("notify-send missing"))

	assert.True(t, f.poller.Poll(t0))
	assert.Len(t, f.adopter.calls, 1)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestClipboardPoller_Run_PollsImmediatelyAndStops(t *testing.T) {
	f := newPollerFixture(t)
	f.poller.interval = time.Hour

	polled := make(chan struct{}, 1)
	f.clipboard.EXPECT().Read().DoAndReturn(func() (string, error) {
		polled <- struct{}{}
		return "", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.poller.Run(ctx)
		close(done)
	}()

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("Run did not poll on start")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
