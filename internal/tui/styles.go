// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(10)
	codeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	barLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barRestStyle = lipgloss.NewStyle().Faint(true)
	formBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
