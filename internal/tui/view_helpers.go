// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	if strings.TrimSpace(footer) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(footer))
	}

	return appStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func row(label, value string) string {
	return labelStyle.Render(label) + " " + value
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// formatCode splits a code into two groups for reading: "123 456",
// "1234 5678".
func formatCode(code string) string {
	if len(code) < 6 {
		return code
	}
	half := len(code) / 2
	return code[:half] + " " + code[half:]
}

// countdownBar renders remaining out of period as a bar width cells wide.
func countdownBar(remaining, period, width int) string {
	if width <= 0 {
		return ""
	}
	if period <= 0 {
		return barRestStyle.Render(strings.Repeat("░", width))
	}

	remaining = max(0, min(remaining, period))
	filled := remaining * width / period
	if remaining > 0 && filled == 0 {
		filled = 1
	}

	style := barFullStyle
	switch {
	case remaining <= 5:
		style = barLowStyle
	case remaining <= 10:
		style = barWarnStyle
	}

	return style.Render(strings.Repeat("█", filled)) + barRestStyle.Render(strings.Repeat("░", width-filled))
}

func countdownLine(remaining int, algorithm fmt.Stringer) string {
	return fmt.Sprintf("remaining %02ds | algorithm %s", remaining, algorithm)
}
