// Package pipeline runs the fetch-normalize-publish load cycle that turns the
// raw CSV resource into the dataset snapshot the dashboard serves.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
	"github.com/Nancy240/Forest-monitoring-data/internal/observability"
)

// Fetcher retrieves and parses the CSV resource into raw rows.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.RawRow, error)
}

// Normalizer maps one raw row into a typed reading, or reports a drop.
type Normalizer interface {
	Normalize(raw domain.RawRow) (domain.SensorReading, error)
}

// Publisher swaps a completed load into the dataset snapshot.
type Publisher interface {
	Publish(readings []domain.SensorReading, loadedAt time.Time)
}

// Loader orchestrates the load cycle.
type Loader struct {
	fetcher        Fetcher
	normalizer     Normalizer
	publisher      Publisher
	logger         *slog.Logger
	metrics        *observability.Metrics
	reloadInterval time.Duration
	ready          atomic.Bool
}

// New creates a Loader. A reloadInterval of zero means load once and stop,
// matching the dashboard's load-on-mount behavior.
func New(f Fetcher, n Normalizer, p Publisher, logger *slog.Logger, metrics *observability.Metrics, reloadInterval time.Duration) *Loader {
	return &Loader{
		fetcher:        f,
		normalizer:     n,
		publisher:      p,
		logger:         logger,
		metrics:        metrics,
		reloadInterval: reloadInterval,
	}
}

// CheckReadiness returns nil once the first load cycle has completed. A cycle
// that failed to fetch still counts: the dashboard clears its loading state
// and renders empty rather than hanging.
func (l *Loader) CheckReadiness(_ context.Context) error {
	if !l.ready.Load() {
		return errors.New("no load cycle has completed yet")
	}
	return nil
}

// Load runs one fetch-normalize-publish cycle. A fetch or parse failure
// leaves the current snapshot untouched and returns the error; per-row drops
// are counted, not returned.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()

	rows, err := l.fetcher.Fetch(ctx)
	if err != nil {
		l.metrics.LoadFailures.Inc()
		l.ready.Store(true)
		l.logger.Error("csv load failed, keeping current snapshot", "error", err)
		return err
	}

	l.metrics.RowsRead.Add(float64(len(rows)))

	readings := make([]domain.SensorReading, 0, len(rows))
	dropped := 0
	for _, raw := range rows {
		reading, err := l.normalizer.Normalize(raw)
		if err != nil {
			dropped++
			l.metrics.RowsDropped.WithLabelValues(dropReason(err)).Inc()
			l.logger.Debug("row dropped", "reason", err)
			continue
		}
		l.countNullFields(reading)
		readings = append(readings, reading)
	}

	l.publisher.Publish(readings, clock.Now().UTC())

	l.metrics.ReadingsRetained.Add(float64(len(readings)))
	l.metrics.SnapshotSize.Set(float64(len(readings)))
	l.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	l.ready.Store(true)

	l.logger.Info("dataset loaded",
		"rows", len(rows),
		"retained", len(readings),
		"dropped", dropped,
		"duration", time.Since(start),
	)
	return nil
}

// Run executes the initial load and, when a reload interval is configured,
// keeps reloading until the context is cancelled. Failed cycles retry with
// exponential backoff so a flapping source never turns into a tight loop.
func (l *Loader) Run(ctx context.Context) error {
	l.logger.Info("loader started", "reload_interval", l.reloadInterval)
	l.metrics.LoaderRunning.Set(1)
	defer l.metrics.LoaderRunning.Set(0)

	if l.reloadInterval <= 0 {
		// Load-once mode: a failure is already logged and counted, and the
		// service keeps serving whatever snapshot exists (possibly empty).
		_ = l.Load(ctx)
		return nil
	}

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loader stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if err := l.Load(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !l.backoffOrStop(ctx, &backoff, maxBackoff) {
				return nil
			}
			continue
		}

		backoff = 200 * time.Millisecond
		if !sleepWithContext(ctx, l.reloadInterval) {
			return nil
		}
	}
}

// countNullFields records which numeric channels were nulled, so a sensor
// with a dying channel shows up in metrics before anyone reads the table.
func (l *Loader) countNullFields(r domain.SensorReading) {
	channels := []struct {
		name  string
		valid bool
	}{
		{domain.ColTemperature, r.Temperature.Valid},
		{domain.ColPressure, r.Pressure.Valid},
		{domain.ColMotionX, r.MotionX.Valid},
		{domain.ColMotionY, r.MotionY.Valid},
		{domain.ColMotionZ, r.MotionZ.Valid},
	}
	for _, ch := range channels {
		if !ch.valid {
			l.metrics.NullFields.WithLabelValues(ch.name).Inc()
		}
	}
}

// backoffOrStop checks for context cancellation, sleeps with the current
// backoff, and advances the backoff. Returns false if the loader should stop.
func (l *Loader) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadTimestamp):
		return "timestamp"
	case errors.Is(err, domain.ErrBadLocation):
		return "location"
	default:
		return "other"
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
