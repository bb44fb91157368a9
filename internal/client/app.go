// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/totp-clip/internal/adapter"
	"github.com/MKhiriev/totp-clip/internal/config"
	"github.com/MKhiriev/totp-clip/internal/logger"
	"github.com/MKhiriev/totp-clip/internal/service"
	"github.com/MKhiriev/totp-clip/internal/tui"
	"github.com/MKhiriev/totp-clip/internal/workers"
	"github.com/MKhiriev/totp-clip/models"
)

// App owns one helper run.
type App struct {
	services *service.ClientServices
	workers  Runner
	display  Display
	log      *logger.Logger
}

// NewApp wires the system clipboard and notifier into the client services
// and selects the display from cfg.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	clip := adapter.NewSystemClipboard()
	if !clip.Available() {
		log.Warn().Msg("no clipboard backend found, reads and writes will fail")
	}
	notifier := adapter.NewNotifier(cfg.Display.Notify, log.Named("notifier"))

	services, err := service.NewClientServices(clip, notifier, cfg.Workers, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	var display Display
	if cfg.Display.Headless {
		display = tui.NewHeadless(services.Events.Events(), services.Pause,
			logger.NewConsoleLogger("headless", os.Stdout))
	} else {
		hotkeys := config.NewHotkeyStore(cfg.HotkeysFile)
		log.Debug().Str("path", hotkeys.Path()).Msg("hotkeys file")
		display = tui.New(services.Events.Events(), services.Pause,
			hotkeys, cfg.Display.RevealSecret, info, log.Named("tui"))
	}

	return newApp(services, display, log), nil
}

func newApp(services *service.ClientServices, display Display, log *logger.Logger) *App {
	ws := make([]workers.Worker, 0, 2)
	for _, w := range services.Workers() {
		ws = append(ws, w)
	}
	return &App{
		services: services,
		workers:  workers.NewWorkers(ws...),
		display:  display,
		log:      log,
	}
}

// Run starts the workers and blocks on the display. When the display
// returns, the workers are stopped and the event bus is closed.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	workersCtx, cancel := context.WithCancel(a.log.Named("workers").WithContext(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.workers.Run(workersCtx)
	}()

	a.log.Info().Msg("helper started")
	err := a.display.Run(ctx)

	cancel()
	<-done
	a.services.Events.Close()

	if dropped := a.services.Events.Dropped(); dropped > 0 {
		a.log.Debug().Uint64("dropped", dropped).Msg("display events dropped")
	}
	a.log.Info().Msg("helper stopped")

	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
