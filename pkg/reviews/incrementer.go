package reviews

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/settings"
)

// Incrementer bumps enabled review counters by a bounded random step, at
// most once per window per store. Stores are processed sequentially and a
// failing store is logged and skipped; the pass continues. There is no
// retry or backoff; the next tick picks up whatever was missed.
type Incrementer struct {
	store    settings.Store
	log      *slog.Logger
	interval time.Duration
	window   time.Duration
	now      func() time.Time
	step     func(min, max int64) int64
}

// Option configures an Incrementer.
type Option func(*Incrementer)

// WithInterval sets how often a pass runs. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(i *Incrementer) {
		if d > 0 {
			i.interval = d
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Incrementer) {
		if now != nil {
			i.now = now
		}
	}
}

// WithStepFunc overrides the random step function, for tests.
func WithStepFunc(fn func(min, max int64) int64) Option {
	return func(i *Incrementer) {
		if fn != nil {
			i.step = fn
		}
	}
}

// NewIncrementer creates a review counter incrementer. Defaults: hourly
// passes, a 24h per-store window. A nil logger discards output.
func NewIncrementer(store settings.Store, log *slog.Logger, opts ...Option) *Incrementer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	i := &Incrementer{
		store:    store,
		log:      log,
		interval: time.Hour,
		window:   24 * time.Hour,
		now:      time.Now,
		step:     randomStep,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run executes one pass immediately, then one per interval until the
// context is cancelled. The hourly tick paired with the 24h window keeps
// bumps roughly daily without depending on process start time.
func (i *Incrementer) Run(ctx context.Context) error {
	i.RunOnce(ctx)

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			i.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single pass over all stores.
func (i *Incrementer) RunOnce(ctx context.Context) {
	all, err := i.store.List(ctx)
	if err != nil {
		i.log.ErrorContext(ctx, "failed to list store settings", "error", err)
		return
	}

	now := i.now().UTC()
	for _, doc := range all {
		r := doc.Reviews
		if !r.Enabled {
			continue
		}
		if !r.LastBumpAt.IsZero() && now.Sub(r.LastBumpAt) < i.window {
			continue
		}

		step := i.step(r.MinDailyStep, r.MaxDailyStep)
		doc.Reviews.Count = r.Count + step
		doc.Reviews.LastBumpAt = now

		if err := i.store.Save(ctx, doc); err != nil {
			i.log.ErrorContext(ctx, "failed to bump review counter",
				"store_id", doc.StoreID, "error", err)
			continue
		}
		i.log.DebugContext(ctx, "bumped review counter",
			"store_id", doc.StoreID, "step", step, "count", doc.Reviews.Count)
	}
}

// randomStep returns a uniform value in [min, max]. Degenerate bounds
// collapse to the lower one; negative bounds are clamped to zero.
func randomStep(min, max int64) int64 {
	if min < 0 {
		min = 0
	}
	if max <= min {
		return min
	}
	return min + rand.Int64N(max-min+1)
}
