package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"gatekeeper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(mutate func(cfg *config.Config)) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Session: &config.SessionConfig{
			Store: config.SessionStoreMemory,
			TTL:   time.Hour,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

// fakeClock is a manually advanced service.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
