// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/rs/zerolog"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	workers := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			workers = append(workers, w)
		}
	}
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned. A panicking worker is logged and cancels the others.
//
// The logger attached to ctx (see [logger.Logger.WithContext]) is handed to
// each worker with a "worker" index field.
func (w *Workers) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parent := logger.FromContext(ctx)

	var wg sync.WaitGroup
	for i, worker := range w.workers {
		log := parent.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int("worker", i)
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Str("panic", fmt.Sprint(r)).
						Msg("worker panicked, stopping all workers")
					cancel()
				}
			}()
			worker.Run(log.WithContext(ctx))
		}()
	}
	wg.Wait()
}
