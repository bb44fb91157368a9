// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package tui

import "os"

// pauseSignals returns a channel that never fires; there is no user
// signal to listen for on this platform.
func pauseSignals() (<-chan os.Signal, func()) {
	return nil, func() {}
}
