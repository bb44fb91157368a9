// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNilCollaborator is returned by [NewClientServices] when a required
	// collaborator is missing.
	ErrNilCollaborator = errors.New("required collaborator is nil")
)
