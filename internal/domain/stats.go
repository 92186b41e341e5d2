package domain

import (
	"sort"
	"strings"
)

// FilterEvent returns the readings whose tag matches exactly. EventAll is the
// pass-through selection and returns the input slice unchanged. Filtering
// never mutates the base set.
func FilterEvent(readings []SensorReading, tag string) []SensorReading {
	if tag == "" || tag == EventAll {
		return readings
	}
	out := make([]SensorReading, 0, len(readings))
	for _, r := range readings {
		if r.Event == tag {
			out = append(out, r)
		}
	}
	return out
}

// CountEvents tallies the fixed known categories over the full (unfiltered)
// set, in chart order. Unknown tags still show up in the table and on the
// map, but the distribution chart only tracks the known three.
func CountEvents(readings []SensorReading) []EventCount {
	byTag := make(map[string]int, len(KnownEvents))
	for _, r := range readings {
		byTag[r.Event]++
	}

	counts := make([]EventCount, 0, len(KnownEvents))
	for _, tag := range KnownEvents {
		counts = append(counts, EventCount{Event: tag, Count: byTag[tag]})
	}
	return counts
}

// DistinctEvents lists the selector options: EventAll first, then every
// distinct tag present in the dataset. Tags sort case-insensitively so
// "None" lands after the lowercase tags instead of byte-order first.
func DistinctEvents(readings []SensorReading) []string {
	seen := make(map[string]struct{})
	for _, r := range readings {
		seen[r.Event] = struct{}{}
	}

	tags := make([]string, 0, len(seen)+1)
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})

	return append([]string{EventAll}, tags...)
}
