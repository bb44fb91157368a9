// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp implements the one-time-password codec: Base32 secret
// decoding, the RFC 4226 HOTP transform and its RFC 6238 time-based form.
//
// Everything in this package is a pure function of its arguments; callers
// pass the current time explicitly.
package otp
