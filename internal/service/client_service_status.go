// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/totp-clip/models"
)

// Status lines published on the event bus.
const (
	StatusWaiting       = "waiting for a copied secret…"
	StatusPaused        = "monitoring paused"
	StatusNotRecognized = "no 2FA secret recognized, waiting…"
)

func statusWritten(desc models.SeedDescriptor) string {
	return fmt.Sprintf("code copied to clipboard (algo=%s, period=%ds)", desc.Algorithm, desc.Period)
}

func statusRefreshed(desc models.SeedDescriptor) string {
	return fmt.Sprintf("code auto-refreshed and copied to clipboard (%ds)", desc.Period)
}

func statusGenerationFailed(err error) string {
	return fmt.Sprintf("code generation failed: %v", err)
}

func statusRefreshFailed(err error) string {
	return fmt.Sprintf("auto-refresh failed: %v", err)
}

func statusClipboardUnavailable(err error) string {
	return fmt.Sprintf("clipboard unavailable: %v", err)
}

func notificationCopied(code string, desc models.SeedDescriptor) string {
	return fmt.Sprintf("copied code %s (%ds)", code, desc.Period)
}

func notificationRefreshed(code string) string {
	return fmt.Sprintf("auto-refreshed: %s", code)
}
