// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the helper process runtime.
//
// It wires the system clipboard, the notifier, the poller and scheduler
// workers and one display (terminal UI or headless log) into a single
// process lifecycle that ends on quit or on SIGINT/SIGTERM.
package client
