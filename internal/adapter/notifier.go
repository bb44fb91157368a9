// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/service"
)

const notificationTitle = "TOTP Clip Helper"

// notifyCommand is one way of raising a desktop notification.
type notifyCommand struct {
	name string
	args func(title, msg string) []string
}

func notifySendArgs(title, msg string) []string {
	return []string{"--app-name=totpclip", "--expire-time=4000", title, msg}
}

func osascriptArgs(title, msg string) []string {
	script := fmt.Sprintf("display notification %s with title %s", appleScriptQuote(msg), appleScriptQuote(title))
	return []string{"-e", script}
}

func powershellArgs(title, msg string) []string {
	script := strings.Join([]string{
		"Add-Type -AssemblyName System.Windows.Forms",
		"$n = New-Object System.Windows.Forms.NotifyIcon",
		"$n.Icon = [System.Drawing.SystemIcons]::Information",
		"$n.Visible = $true",
		fmt.Sprintf("$n.ShowBalloonTip(4000, %s, %s, 'Info')", powershellQuote(title), powershellQuote(msg)),
		"Start-Sleep -Seconds 5",
		"$n.Dispose()",
	}, "; ")
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// desktopCandidates lists notification commands for goos in order of
// preference.
func desktopCandidates(goos string) []notifyCommand {
	switch goos {
	case "darwin":
		return []notifyCommand{{name: "osascript", args: osascriptArgs}}
	case "windows":
		return []notifyCommand{
			{name: "powershell", args: powershellArgs},
			{name: "pwsh", args: powershellArgs},
		}
	default:
		return []notifyCommand{{name: "notify-send", args: notifySendArgs}}
	}
}

// DesktopNotifier raises native notifications by running an external
// command. Notify does not wait for the command to finish.
type DesktopNotifier struct {
	path  string
	cmd   notifyCommand
	title string
	start func(*exec.Cmd) error
}

// findDesktopNotifier returns the first candidate for goos that lookPath
// can resolve.
func findDesktopNotifier(goos string, lookPath func(string) (string, error)) (*DesktopNotifier, bool) {
	for _, cand := range desktopCandidates(goos) {
		path, err := lookPath(cand.name)
		if err != nil {
			continue
		}
		return &DesktopNotifier{
			path:  path,
			cmd:   cand,
			title: notificationTitle,
			start: startDetached,
		}, true
	}
	return nil, false
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Notify starts the notification command for msg.
func (n *DesktopNotifier) Notify(msg string) error {
	cmd := exec.Command(n.path, n.cmd.args(n.title, msg)...)
	if err := n.start(cmd); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotification, n.cmd.name, err)
	}
	return nil
}

// Command returns the resolved executable path.
func (n *DesktopNotifier) Command() string {
	return n.path
}

// LogNotifier writes notifications to the log. It stands in when no
// desktop notification command is available.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier returns a notifier that logs at info level.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs msg.
func (n *LogNotifier) Notify(msg string) error {
	n.log.Info().Str("notification", msg).Msg("notify")
	return nil
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(string) error { return nil }

// NewNotifier selects the notifier for this run: [NopNotifier] when
// disabled, otherwise a [DesktopNotifier] if the platform command is on
// PATH and a [LogNotifier] if it is not.
func NewNotifier(enabled bool, log *logger.Logger) service.Notifier {
	return newNotifier(enabled, runtime.GOOS, exec.LookPath, log)
}

func newNotifier(enabled bool, goos string, lookPath func(string) (string, error), log *logger.Logger) service.Notifier {
	if log == nil {
		log = logger.Nop()
	}
	if !enabled {
		return NopNotifier{}
	}

	if n, ok := findDesktopNotifier(goos, lookPath); ok {
		log.Debug().Str("command", n.Command()).Msg("desktop notifications enabled")
		return n
	}

	log.Info().Str("os", goos).Msg("no desktop notification command found, notifications go to the log")
	return NewLogNotifier(log)
}
