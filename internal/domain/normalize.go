package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/guregu/null"
)

// Drop reasons returned by NormalizeRow. Callers count these per cycle; a
// drop is expected data loss, not a pipeline failure.
var (
	ErrBadTimestamp = errors.New("missing or unparseable timestamp")
	ErrBadLocation  = errors.New("missing or malformed location")
)

// NormalizeRow maps a raw CSV row into a SensorReading.
//
// Timestamp and location are gates: a row failing either is dropped with
// ErrBadTimestamp or ErrBadLocation. All numeric channels parse with
// null-on-failure semantics so one bad field never discards the row.
func NormalizeRow(raw RawRow) (SensorReading, error) {
	ts, err := parseTimestamp(raw[ColTimestamp])
	if err != nil {
		return SensorReading{}, err
	}

	loc, err := parseLocation(raw[ColLocation])
	if err != nil {
		return SensorReading{}, err
	}

	x := parseNullableFloat(raw[ColMotionX])
	y := parseNullableFloat(raw[ColMotionY])
	z := parseNullableFloat(raw[ColMotionZ])

	return SensorReading{
		Timestamp:       ts,
		Temperature:     parseNullableFloat(raw[ColTemperature]),
		Pressure:        parseNullableFloat(raw[ColPressure]),
		MotionX:         x,
		MotionY:         y,
		MotionZ:         z,
		MotionMagnitude: motionMagnitude(x, y, z),
		Location:        loc,
		Event:           normalizeEventTag(raw[ColEvent]),
		IngestedAt:      clock.Now().UTC(),
	}, nil
}

// parseTimestamp accepts any layout dateparse recognizes (RFC3339, common
// date/time forms, unix epochs). Empty or unrecognized input drops the row.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadTimestamp
	}
	ts, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}
	return ts, nil
}

// parseLocation splits a "lat,lon" string into a coordinate pair. Both parts
// must parse as finite floats.
func parseLocation(s string) (Geo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Geo{}, ErrBadLocation
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Geo{}, fmt.Errorf("%w: %q", ErrBadLocation, s)
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil || !isFinite(lat) || !isFinite(lon) {
		return Geo{}, fmt.Errorf("%w: %q", ErrBadLocation, s)
	}

	return Geo{Lat: lat, Lon: lon}, nil
}

// parseNullableFloat parses a numeric channel value, returning an invalid
// (JSON null) Float when the value is absent, non-numeric, or non-finite.
func parseNullableFloat(s string) null.Float {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return null.Float{}
	}
	return null.FloatFrom(v)
}

// motionMagnitude derives the Euclidean norm of the three motion axes.
// Null if any axis is null; inputs are already finite by construction.
func motionMagnitude(x, y, z null.Float) null.Float {
	if !x.Valid || !y.Valid || !z.Valid {
		return null.Float{}
	}
	m := math.Sqrt(x.Float64*x.Float64 + y.Float64*y.Float64 + z.Float64*z.Float64)
	if !isFinite(m) {
		return null.Float{}
	}
	return null.FloatFrom(m)
}

// normalizeEventTag trims the tag and defaults absent tags to EventNone.
func normalizeEventTag(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return EventNone
	}
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
