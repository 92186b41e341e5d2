// Package dataset holds the normalized reading set as an immutable snapshot.
package dataset

import (
	"sync/atomic"
	"time"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// Snapshot is one immutable load result. A new load swaps in a whole new
// snapshot; readers never observe partial state.
type Snapshot struct {
	Readings []domain.SensorReading
	LoadedAt time.Time
}

// Store publishes and serves dataset snapshots. There is exactly one writer
// (the loader) and any number of concurrent readers (HTTP handlers), so an
// atomic pointer swap is all the coordination needed.
type Store struct {
	snapshot atomic.Pointer[Snapshot]
}

// NewStore creates an empty store. Until the first Publish the store serves
// an empty dataset and reports not ready.
func NewStore() *Store {
	s := &Store{}
	s.snapshot.Store(&Snapshot{})
	return s
}

// Publish replaces the current snapshot with the given readings.
func (s *Store) Publish(readings []domain.SensorReading, loadedAt time.Time) {
	s.snapshot.Store(&Snapshot{Readings: readings, LoadedAt: loadedAt})
}

// Readings returns the current snapshot filtered by event tag.
// domain.EventAll (or "") returns the full set.
func (s *Store) Readings(eventTag string) []domain.SensorReading {
	return domain.FilterEvent(s.snapshot.Load().Readings, eventTag)
}

// EventCounts tallies the known event categories over the unfiltered snapshot.
func (s *Store) EventCounts() []domain.EventCount {
	return domain.CountEvents(s.snapshot.Load().Readings)
}

// Events lists the filter selector options for the current snapshot.
func (s *Store) Events() []string {
	return domain.DistinctEvents(s.snapshot.Load().Readings)
}

// Len reports the size of the current snapshot.
func (s *Store) Len() int {
	return len(s.snapshot.Load().Readings)
}

// LoadedAt reports when the current snapshot was published; zero before the
// first publish.
func (s *Store) LoadedAt() time.Time {
	return s.snapshot.Load().LoadedAt
}
