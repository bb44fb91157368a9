// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers side by side under one context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must block until ctx is cancelled or the worker has nothing left to
// do.
//
// Example implementation:
//
//	type MyWorker struct{ interval time.Duration }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    t := time.NewTicker(w.interval)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case <-t.C:
//	            // one step of background processing
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}
