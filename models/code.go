// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GeneratedCode is a derived one-time code together with the period counter
// it was derived from. It is transient: used to fill the clipboard and to
// detect period-boundary crossings, never retained past the current tick.
type GeneratedCode struct {
	Code    string
	Counter uint64
}

// CodeSource identifies which activity wrote a code to the clipboard.
type CodeSource int

const (
	// SourcePoller marks codes written after a new seed was seen on the
	// clipboard.
	SourcePoller CodeSource = iota + 1
	// SourceRefresh marks codes written by the scheduler when a period
	// boundary was crossed.
	SourceRefresh
)

// String implements [fmt.Stringer].
func (s CodeSource) String() string {
	switch s {
	case SourcePoller:
		return "poller"
	case SourceRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}
