// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import "github.com/MKhiriev/totp-clip/models"

// outcome is the tagged result of a single pattern.
type outcome int

const (
	// outcomeNext passes the text on to the next pattern.
	outcomeNext outcome = iota
	// outcomeMatch stops the chain with a descriptor.
	outcomeMatch
	// outcomeReject stops the chain without a descriptor.
	outcomeReject
)

type result struct {
	outcome    outcome
	descriptor models.SeedDescriptor
	err        error
}

func next() result { return result{outcome: outcomeNext} }

func match(d models.SeedDescriptor) result { return result{outcome: outcomeMatch, descriptor: d} }

func reject(err error) result { return result{outcome: outcomeReject, err: err} }

// pattern is one step of the recognition chain. text is already trimmed.
type pattern interface {
	apply(text string) result
}

type patternFunc func(text string) result

func (f patternFunc) apply(text string) result { return f(text) }
