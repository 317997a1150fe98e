// Package worker runs background housekeeping next to the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	sessions usecase.SessionManager
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionManager
}

// NewSessionSweeper purges expired and revoked sessions every
// session.purgeInterval until the application stops.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	w := newSweeper(params.Sessions, params.Cfg.Session.PurgeInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

func newSweeper(sessions usecase.SessionManager, interval time.Duration, logger *slog.Logger) *sweeper {
	return &sweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger.With(slog.String("worker", "session_sweeper")),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Serve blocks until stop is called or ctx is done. A non-positive interval
// disables sweeping.
func (w *sweeper) Serve(ctx context.Context) error {
	defer close(w.done)

	if w.interval <= 0 {
		w.logger.Info("Session sweeper disabled")

		return nil
	}

	w.logger.Info("Starting session sweeper", slog.Duration("interval", w.interval))

	ctx, cancel := context.WithCancel(deliverycontext.WithLogger(ctx, w.logger))
	defer cancel()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.quit:
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := w.sessions.PurgeExpired(sweepCtx)
	if err != nil {
		w.logger.Error("Session purge failed", slog.Any("error", err))

		return
	}
	if removed > 0 {
		w.logger.Info("Purged sessions", slog.Int("removed", removed))
	}
}

// stop signals Serve and waits for an in-flight sweep to finish.
func (w *sweeper) stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.quit) })

	w.logger.Info("Shutting down session sweeper")

	select {
	case <-w.done:
	case <-ctx.Done():
	}

	return nil
}
