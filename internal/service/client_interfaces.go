// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Clipboard is the system clipboard as seen by the core. Both operations
// are synchronous and may fail transiently (locked by another process,
// no display, empty selection); callers treat every error as recoverable.
type Clipboard interface {
	// Read returns the current clipboard text.
	Read() (string, error)

	// Write replaces the clipboard content with text.
	Write(text string) error
}

// Notifier delivers one-line user notifications. Delivery is best-effort:
// callers log and discard any returned error.
type Notifier interface {
	// Notify shows msg to the user.
	Notify(msg string) error
}

// Worker is a periodic background activity that runs until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}
