// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/totp-clip/internal/otp"
	"github.com/MKhiriev/totp-clip/models"
	"github.com/stretchr/testify/require"
)

// rfcSecret is the RFC 6238 SHA1 key "12345678901234567890" in Base32.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

// t0 sits 20 seconds into a 30 second period.
var t0 = time.Unix(1_700_000_000, 0)

func testDescriptor(t *testing.T) models.SeedDescriptor {
	t.Helper()
	secret, err := otp.DecodeSecret(rfcSecret)
	require.NoError(t, err)
	return models.SeedDescriptor{
		Secret:     secret,
		SecretText: rfcSecret,
		Digits:     models.DefaultDigits,
		Period:     models.DefaultPeriod,
		Algorithm:  models.DefaultAlgorithm,
	}
}

func codeAt(t *testing.T, desc models.SeedDescriptor, at time.Time) string {
	t.Helper()
	code, err := otp.TOTP(desc, at)
	require.NoError(t, err)
	return code.Code
}

func drain(bus *EventBus) []models.Event {
	var out []models.Event
	for {
		select {
		case ev, ok := <-bus.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func eventsOf(events []models.Event, kind models.EventKind) []models.Event {
	var out []models.Event
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
