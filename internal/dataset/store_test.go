package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

func reading(tag string) domain.SensorReading {
	return domain.SensorReading{
		Timestamp: time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC),
		Location:  domain.Geo{Lat: 13.08, Lon: 80.27},
		Event:     tag,
	}
}

func TestStore_EmptyUntilPublish(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Readings(domain.EventAll))
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.LoadedAt().IsZero())
}

func TestStore_PublishSwapsSnapshot(t *testing.T) {
	s := NewStore()
	loadedAt := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	s.Publish([]domain.SensorReading{reading(domain.EventFireRisk), reading(domain.EventNone)}, loadedAt)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, loadedAt, s.LoadedAt())

	s.Publish([]domain.SensorReading{reading(domain.EventMotionDetected)}, loadedAt.Add(time.Minute))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, loadedAt.Add(time.Minute), s.LoadedAt())
}

func TestStore_FilteredViews(t *testing.T) {
	s := NewStore()
	s.Publish([]domain.SensorReading{
		reading(domain.EventFireRisk),
		reading(domain.EventFireRisk),
		reading(domain.EventNone),
	}, time.Now())

	t.Run("filter by tag", func(t *testing.T) {
		assert.Len(t, s.Readings(domain.EventFireRisk), 2)
		assert.Len(t, s.Readings(domain.EventNone), 1)
		assert.Len(t, s.Readings(domain.EventAll), 3)
	})

	t.Run("counts are always unfiltered", func(t *testing.T) {
		assert.Equal(t, []domain.EventCount{
			{Event: domain.EventFireRisk, Count: 2},
			{Event: domain.EventMotionDetected, Count: 0},
			{Event: domain.EventNone, Count: 1},
		}, s.EventCounts())
	})

	t.Run("selector options", func(t *testing.T) {
		assert.Equal(t, []string{domain.EventAll, domain.EventFireRisk, domain.EventNone}, s.Events())
	})
}
