package warmer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
)

const (
	defaultInterval = 6 * time.Hour

	// readyFailureLimit is the number of consecutive failed cycles that drops readiness.
	readyFailureLimit = 3
)

// Target pre-fetches one player season into the cache.
type Target interface {
	Warm(ctx context.Context, ref, season string) error
}

// Warmer re-fetches a watchlist of players on an interval so API reads hit a warm cache.
type Warmer struct {
	target   Target
	players  []string
	season   string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the warmer has completed a cycle and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Warmer. A non-positive interval falls back to six hours.
func New(target Target, players []string, season string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Warmer{
		target:   target,
		players:  append([]string(nil), players...),
		season:   season,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start runs one cycle immediately and then one per interval until ctx ends or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "warmer started",
			logging.FieldCount, len(w.players),
			logging.FieldSeason, w.season,
			logging.FieldDurationMS, w.interval.Milliseconds(),
		)
		w.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.ticker.C:
				w.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

// warmOnce warms every player; one failure fails the cycle but the rest are still attempted.
func (w *Warmer) warmOnce(ctx context.Context) {
	start := w.now()
	w.recordAttempt(start)

	var errs []error
	for _, ref := range w.players {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := w.target.Warm(ctx, ref, w.season); err != nil {
			logging.Warn(w.logger, "warm player failed",
				logging.FieldPlayer, ref,
				logging.FieldSeason, w.season,
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	elapsed := time.Since(start)
	w.metrics.RecordWarmerCycle(elapsed, err)

	if err != nil {
		logging.Error(w.logger, "warmer cycle failed", err,
			logging.FieldCount, len(errs),
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		w.recordFailure(err, start)
		return
	}
	w.recordSuccess(start)
	logging.Info(w.logger, "warmer refreshed cache",
		logging.FieldCount, len(w.players),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	w.status.LastError = err.Error()
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
