// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrClipboardAccess wraps every clipboard read or write failure.
	ErrClipboardAccess = errors.New("clipboard access failed")
	// ErrNotification wraps notification delivery failures.
	ErrNotification = errors.New("notification failed")
)
