// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import "errors"

var (
	// ErrDecode indicates a secret that is not valid Base32 or decodes to
	// an empty key.
	ErrDecode = errors.New("invalid base32 secret")

	// ErrInvalidDigits indicates a code length outside 1..10.
	ErrInvalidDigits = errors.New("invalid number of digits")

	// ErrInvalidPeriod indicates a non-positive period.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrUnsupportedAlgorithm indicates a hash algorithm other than SHA1,
	// SHA256 or SHA512.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
