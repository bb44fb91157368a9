// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the helper to the desktop: the system clipboard
// and user notifications.
//
// [SystemClipboard] wraps github.com/atotto/clipboard. Notifications are
// delivered by [DesktopNotifier] through whichever notification command the
// platform provides, by [LogNotifier] when none is found, or dropped by
// [NopNotifier] when disabled. [NewNotifier] picks one at startup.
//
// Failures wrap [ErrClipboardAccess] or [ErrNotification] so callers can
// use [errors.Is] without knowing the backend. The types satisfy the
// service.Clipboard and service.Notifier interfaces.
package adapter
