// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import "errors"

var (
	// ErrNotRecognized is returned by [Extract] when no pattern matches.
	ErrNotRecognized = errors.New("no totp seed recognized")

	// ErrParse indicates a malformed otpauth URI or a non-integer or
	// out-of-range parameter. It is consumed inside the pattern chain.
	ErrParse = errors.New("malformed otpauth uri")
)
