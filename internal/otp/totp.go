// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"fmt"
	"time"

	"github.com/MKhiriev/totp-clip/models"
)

// Counter returns floor(unix(t) / period), the TOTP moving factor.
// A non-positive period yields 0.
func Counter(t time.Time, period int) uint64 {
	if period <= 0 {
		return 0
	}
	unix := t.Unix()
	if unix < 0 {
		return 0
	}
	return uint64(unix) / uint64(period)
}

// Boundary returns the Unix timestamp at which the period identified by
// counter starts.
func Boundary(counter uint64, period int) int64 {
	return int64(counter) * int64(period)
}

// Remaining returns the number of seconds, 1..period, until the next period
// boundary after now, measured from the boundary timestamp of the current
// period. It uses the same floor arithmetic as [Counter], so the countdown
// reaches the boundary at the same instant the counter changes.
func Remaining(now time.Time, boundary int64, period int) int {
	if period <= 0 {
		return 0
	}
	elapsed := (now.Unix() - boundary) % int64(period)
	if elapsed < 0 {
		elapsed += int64(period)
	}
	return period - int(elapsed)
}

// TOTP derives the code for desc at time t.
func TOTP(desc models.SeedDescriptor, t time.Time) (models.GeneratedCode, error) {
	if desc.Period <= 0 {
		return models.GeneratedCode{}, fmt.Errorf("%w: %d", ErrInvalidPeriod, desc.Period)
	}

	counter := Counter(t, desc.Period)
	code, err := DeriveCode(desc.Secret, counter, desc.Digits, desc.Algorithm)
	if err != nil {
		return models.GeneratedCode{}, err
	}

	return models.GeneratedCode{Code: code, Counter: counter}, nil
}
