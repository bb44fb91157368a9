// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	return validateWorkers(cfg.Workers.PollInterval, cfg.Workers.TickInterval)
}

func (cfg *ClientConfig) validate() error {
	return validateWorkers(cfg.Workers.PollInterval, cfg.Workers.TickInterval)
}

func validateWorkers(poll, tick time.Duration) error {
	if poll <= 0 || poll > MaxPollInterval {
		return fmt.Errorf("%w: %v", ErrInvalidPollInterval, poll)
	}

	if tick <= 0 || tick > MaxTickInterval {
		return fmt.Errorf("%w: %v", ErrInvalidTickInterval, tick)
	}

	return nil
}
