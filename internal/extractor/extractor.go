// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"strings"

	"github.com/MKhiriev/totp-clip/models"
)

// chain is the recognition order. The URI pattern must run before link
// rejection, since an otpauth URI is itself link-shaped.
var chain = []pattern{
	patternFunc(otpauthURI),
	patternFunc(rejectLinks),
	patternFunc(bareSecret),
}

// Extract recognizes a seed in text.
//
// Returns the descriptor and a nil error on success. Returns an error
// wrapping [ErrNotRecognized] when nothing matches, or one wrapping
// otp.ErrDecode when a recognized secret is not valid Base32.
func Extract(text string) (models.SeedDescriptor, error) {
	text = strings.TrimSpace(text)

	for _, p := range chain {
		r := p.apply(text)
		switch r.outcome {
		case outcomeMatch:
			return r.descriptor, nil
		case outcomeReject:
			if r.err != nil {
				return models.SeedDescriptor{}, r.err
			}
			return models.SeedDescriptor{}, ErrNotRecognized
		}
	}

	return models.SeedDescriptor{}, ErrNotRecognized
}
