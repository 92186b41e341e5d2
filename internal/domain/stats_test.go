package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReadings(tags ...string) []SensorReading {
	base := time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC)
	readings := make([]SensorReading, 0, len(tags))
	for i, tag := range tags {
		readings = append(readings, SensorReading{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Location:  Geo{Lat: 13.08, Lon: 80.27},
			Event:     tag,
		})
	}
	return readings
}

func TestFilterEvent(t *testing.T) {
	readings := makeReadings(EventFireRisk, EventNone, EventFireRisk, EventMotionDetected)

	t.Run("exact match", func(t *testing.T) {
		filtered := FilterEvent(readings, EventFireRisk)

		require.Len(t, filtered, 2)
		for _, r := range filtered {
			assert.Equal(t, EventFireRisk, r.Event)
		}
	})

	t.Run("All passes through", func(t *testing.T) {
		assert.Equal(t, readings, FilterEvent(readings, EventAll))
	})

	t.Run("empty tag passes through", func(t *testing.T) {
		assert.Equal(t, readings, FilterEvent(readings, ""))
	})

	t.Run("unknown tag matches nothing", func(t *testing.T) {
		assert.Empty(t, FilterEvent(readings, "flood"))
	})

	t.Run("does not mutate the base set", func(t *testing.T) {
		before := makeReadings(EventFireRisk, EventNone)
		_ = FilterEvent(before, EventFireRisk)
		assert.Equal(t, makeReadings(EventFireRisk, EventNone), before)
	})
}

func TestCountEvents(t *testing.T) {
	t.Run("fixed tally in chart order", func(t *testing.T) {
		var tags []string
		for i := 0; i < 13; i++ {
			tags = append(tags, EventFireRisk)
		}
		for i := 0; i < 5; i++ {
			tags = append(tags, EventMotionDetected)
		}
		tags = append(tags, EventNone, EventNone)

		counts := CountEvents(makeReadings(tags...))

		assert.Equal(t, []EventCount{
			{Event: EventFireRisk, Count: 13},
			{Event: EventMotionDetected, Count: 5},
			{Event: EventNone, Count: 2},
		}, counts)
	})

	t.Run("empty dataset yields zero bars", func(t *testing.T) {
		counts := CountEvents(nil)

		assert.Equal(t, []EventCount{
			{Event: EventFireRisk, Count: 0},
			{Event: EventMotionDetected, Count: 0},
			{Event: EventNone, Count: 0},
		}, counts)
	})

	t.Run("unknown tags are not tallied", func(t *testing.T) {
		counts := CountEvents(makeReadings("flood", EventFireRisk))

		assert.Equal(t, []EventCount{
			{Event: EventFireRisk, Count: 1},
			{Event: EventMotionDetected, Count: 0},
			{Event: EventNone, Count: 0},
		}, counts)
	})
}

func TestDistinctEvents(t *testing.T) {
	t.Run("All first then sorted tags", func(t *testing.T) {
		events := DistinctEvents(makeReadings(EventNone, EventFireRisk, EventNone, EventMotionDetected))

		assert.Equal(t, []string{EventAll, EventFireRisk, EventMotionDetected, EventNone}, events)
	})

	t.Run("empty dataset still offers All", func(t *testing.T) {
		assert.Equal(t, []string{EventAll}, DistinctEvents(nil))
	})
}
