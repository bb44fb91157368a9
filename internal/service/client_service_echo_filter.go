// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/totp-clip/models"
)

var codeShapeRe = regexp.MustCompile(`^\d{6,8}$`)

// EchoFilter remembers the last code each writer put on the clipboard so
// the poller does not mistake the helper's own output for new input.
type EchoFilter struct {
	mu       sync.Mutex
	byPoller string
	byTimer  string
}

// NewEchoFilter returns an empty filter.
func NewEchoFilter() *EchoFilter {
	return &EchoFilter{}
}

// Remember records code as the latest write made by source.
func (f *EchoFilter) Remember(source models.CodeSource, code string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch source {
	case models.SourcePoller:
		f.byPoller = code
	case models.SourceRefresh:
		f.byTimer = code
	}
}

// IsEcho reports whether text is a code this process wrote itself. Only
// 6 to 8 digit strings can be echoes.
func (f *EchoFilter) IsEcho(text string) bool {
	text = strings.TrimSpace(text)
	if !codeShapeRe.MatchString(text) {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return text == f.byPoller || text == f.byTimer
}
