// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/totp-clip/internal/otp"
	"github.com/MKhiriev/totp-clip/models"
)

var (
	// linkRe matches any scheme://, or a bare www. prefix.
	linkRe = regexp.MustCompile(`(?i)\b(?:[a-z][a-z0-9+\-.]*://|www\.)`)

	whitespaceRe = regexp.MustCompile(`\s+`)

	bareSecretRe = regexp.MustCompile(`^[A-Z2-7]{16,64}$`)
)

// rejectLinks stops the chain for link-bearing text that is not an
// otpauth URI.
func rejectLinks(text string) result {
	if linkRe.MatchString(text) && !hasOTPAuthPrefix(text) {
		return reject(nil)
	}
	return next()
}

// bareSecret matches text that, with whitespace removed and uppercased,
// consists entirely of 16 to 64 Base32 characters.
func bareSecret(text string) result {
	cleaned := strings.ToUpper(whitespaceRe.ReplaceAllString(text, ""))
	if !bareSecretRe.MatchString(cleaned) {
		return next()
	}

	secret, err := otp.DecodeSecret(cleaned)
	if err != nil {
		return reject(err)
	}

	return match(models.SeedDescriptor{
		Secret:     secret,
		SecretText: cleaned,
		Digits:     models.DefaultDigits,
		Period:     models.DefaultPeriod,
		Algorithm:  models.DefaultAlgorithm,
	})
}
