// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"encoding/base32"
	"fmt"
	"strings"
	"unicode"
)

// NormalizeSecret removes all whitespace and any trailing '=' padding from
// text and uppercases the result.
func NormalizeSecret(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	return strings.TrimRight(strings.ToUpper(cleaned), "=")
}

// DecodeSecret normalizes text, pads it with '=' to the next multiple of
// eight characters and decodes it as standard Base32.
//
// Returns an error wrapping [ErrDecode] if the alphabet or length is invalid
// or the decoded key is empty.
func DecodeSecret(text string) ([]byte, error) {
	s := NormalizeSecret(text)
	if missing := (8 - len(s)%8) % 8; missing > 0 {
		s += strings.Repeat("=", missing)
	}

	key, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrDecode)
	}

	return key, nil
}
