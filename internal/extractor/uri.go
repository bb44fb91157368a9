// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/totp-clip/internal/otp"
	"github.com/MKhiriev/totp-clip/models"
)

const (
	otpauthScheme = "otpauth"
	otpauthPrefix = otpauthScheme + "://"
	totpType      = "totp"

	minDigits = 6
	maxDigits = 8
)

var otpauthRe = regexp.MustCompile(`(?i)otpauth://totp/[^?\s]+?\?[^\s]+`)

// otpauthURI matches the first otpauth://totp/ URI in text.
//
// A URI that fails to parse passes the text on to the next pattern, unless
// the text itself starts with the otpauth scheme: a broken otpauth link is
// never reinterpreted as a bare secret.
func otpauthURI(text string) result {
	raw := otpauthRe.FindString(text)
	if raw == "" {
		return next()
	}

	desc, err := parseOTPAuth(raw)
	switch {
	case err == nil:
		return match(desc)
	case errors.Is(err, otp.ErrDecode):
		return reject(err)
	case hasOTPAuthPrefix(text):
		return reject(nil)
	default:
		return next()
	}
}

func hasOTPAuthPrefix(text string) bool {
	return len(text) >= len(otpauthPrefix) && strings.EqualFold(text[:len(otpauthPrefix)], otpauthPrefix)
}

// parseOTPAuth parses a single otpauth://totp/ URI.
func parseOTPAuth(raw string) (models.SeedDescriptor, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return models.SeedDescriptor{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !strings.EqualFold(u.Scheme, otpauthScheme) || !strings.EqualFold(u.Host, totpType) {
		return models.SeedDescriptor{}, fmt.Errorf("%w: unexpected scheme or type", ErrParse)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return models.SeedDescriptor{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	secretText := strings.TrimSpace(query.Get("secret"))
	if secretText == "" {
		return models.SeedDescriptor{}, fmt.Errorf("%w: missing secret", ErrParse)
	}

	digits, err := intParam(query, "digits", models.DefaultDigits)
	if err != nil {
		return models.SeedDescriptor{}, err
	}
	if digits < minDigits || digits > maxDigits {
		return models.SeedDescriptor{}, fmt.Errorf("%w: digits %d out of range", ErrParse, digits)
	}

	period, err := intParam(query, "period", models.DefaultPeriod)
	if err != nil {
		return models.SeedDescriptor{}, err
	}
	if period <= 0 {
		return models.SeedDescriptor{}, fmt.Errorf("%w: period %d must be positive", ErrParse, period)
	}

	algorithm, err := otp.ParseAlgorithm(query.Get("algorithm"))
	if err != nil {
		return models.SeedDescriptor{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	secret, err := otp.DecodeSecret(secretText)
	if err != nil {
		return models.SeedDescriptor{}, err
	}

	label := strings.TrimPrefix(u.Path, "/")
	issuer := strings.TrimSpace(query.Get("issuer"))
	account := label
	if before, after, found := strings.Cut(label, ":"); found {
		account = strings.TrimSpace(after)
		if issuer == "" {
			issuer = strings.TrimSpace(before)
		}
	}

	return models.SeedDescriptor{
		Secret:     secret,
		SecretText: otp.NormalizeSecret(secretText),
		Digits:     digits,
		Period:     period,
		Algorithm:  algorithm,
		Label:      label,
		Issuer:     issuer,
		Account:    account,
	}, nil
}

func intParam(query url.Values, name string, def int) (int, error) {
	v := strings.TrimSpace(query.Get(name))
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrParse, name, v)
	}
	return n, nil
}
