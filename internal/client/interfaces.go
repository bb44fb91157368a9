// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Display consumes display events until the user quits or ctx is done.
type Display interface {
	Run(ctx context.Context) error
}

// Runner runs the background workers until ctx is done.
type Runner interface {
	Run(ctx context.Context)
}
