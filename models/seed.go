// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Algorithm names the HMAC hash function used for code derivation.
type Algorithm string

const (
	// AlgorithmSHA1 is the RFC 4226 default and the value used when a seed
	// does not specify one.
	AlgorithmSHA1   Algorithm = "SHA1"
	AlgorithmSHA256 Algorithm = "SHA256"
	AlgorithmSHA512 Algorithm = "SHA512"
)

// Seed defaults applied to bare secrets and to otpauth URIs that omit the
// corresponding parameter.
const (
	DefaultDigits    = 6
	DefaultPeriod    = 30
	DefaultAlgorithm = AlgorithmSHA1
)

// String implements [fmt.Stringer].
func (a Algorithm) String() string {
	return string(a)
}

// SeedDescriptor is a recognized one-time-password seed.
//
// A descriptor is only ever produced with a non-empty decoded Secret. It
// lives in memory only: Secret is excluded from JSON and nothing in the
// application writes a descriptor to disk.
type SeedDescriptor struct {
	// Secret is the decoded key material.
	Secret []byte `json:"-"`

	// SecretText is the normalized Base32 form of Secret (uppercase, no
	// whitespace, no padding). Used for optional display only.
	SecretText string `json:"-"`

	// Digits is the length of generated codes, 6 to 8.
	Digits int `json:"digits"`

	// Period is the code lifetime in seconds. Always > 0.
	Period int `json:"period"`

	// Algorithm is the HMAC hash function.
	Algorithm Algorithm `json:"algorithm"`

	// Label, Issuer and Account are display-only metadata taken from an
	// otpauth URI. They are empty for bare secrets.
	Label   string `json:"label,omitempty"`
	Issuer  string `json:"issuer,omitempty"`
	Account string `json:"account,omitempty"`
}

// IsZero reports whether d holds no secret.
func (d SeedDescriptor) IsZero() bool {
	return len(d.Secret) == 0
}

// MaskedSecret returns SecretText shortened to its first and last four
// characters. Secrets of eight characters or fewer are returned unchanged.
func (d SeedDescriptor) MaskedSecret() string {
	s := d.SecretText
	if len(s) <= 8 {
		return s
	}
	return s[:4] + "…" + s[len(s)-4:] + "  (len=" + strconv.Itoa(len(s)) + ")"
}
