package domain

import (
	"time"

	"github.com/guregu/null"
)

// Canonical CSV column names produced by the sensor simulator.
const (
	ColTimestamp   = "timestamp"
	ColTemperature = "temperature"
	ColPressure    = "pressure"
	ColMotionX     = "motion_x"
	ColMotionY     = "motion_y"
	ColMotionZ     = "motion_z"
	ColLocation    = "location"
	ColEvent       = "event"
)

// Event tags. The distribution chart tallies the three known categories;
// EventAll is the pass-through filter selection, never a stored tag.
const (
	EventAll            = "All"
	EventFireRisk       = "fire_risk"
	EventMotionDetected = "motion_detected"
	EventNone           = "None"
)

// KnownEvents is the fixed category order used by the event-count tally.
var KnownEvents = []string{EventFireRisk, EventMotionDetected, EventNone}

// RawRow is one parsed CSV row, keyed by canonical (trimmed, unquoted,
// lowercased) header name.
type RawRow map[string]string

// Geo is a WGS-84 latitude/longitude pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SensorReading is the normalized form of one valid CSV row.
//
// Timestamp and Location are mandatory; rows failing either gate are dropped
// during normalization. Every numeric channel is independently nullable — a
// garbled temperature does not invalidate the pressure next to it. Nullable
// fields serialize as JSON null, never NaN.
type SensorReading struct {
	Timestamp       time.Time  `json:"timestamp"`
	Temperature     null.Float `json:"temperature"`
	Pressure        null.Float `json:"pressure"`
	MotionX         null.Float `json:"motion_x"`
	MotionY         null.Float `json:"motion_y"`
	MotionZ         null.Float `json:"motion_z"`
	MotionMagnitude null.Float `json:"motion_magnitude"`
	Location        Geo        `json:"location"`
	Event           string     `json:"event"`
	IngestedAt      time.Time  `json:"ingested_at"`
}

// EventCount is one bar of the event distribution chart.
type EventCount struct {
	Event string `json:"event"`
	Count int    `json:"count"`
}
