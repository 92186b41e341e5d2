// Command validate runs a sensor CSV through the real source and normalizer
// and reports what the dashboard would serve: retained/dropped row counts,
// null-field totals, and the event tally. Useful for sanity-checking a new
// simulator export before pointing the service at it.
//
// Usage:
//
//	go run ./cmd/validate -csv data/forest_sensor_data.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/Nancy240/Forest-monitoring-data/internal/csvsource"
	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path or URL of the sensor CSV to validate")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath string) int {
	fmt.Println("=== Forest Sensor CSV Validation ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	source := csvsource.New(csvPath, 15*time.Second, logger)

	rows, err := source.Fetch(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	readings, stats := normalizeAll(rows)
	printReport(len(rows), readings, stats)

	phases := []*phase{
		validateInvariants(readings),
		validateEventTally(readings),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}

// dropStats aggregates why rows were rejected and which channels were nulled.
type dropStats struct {
	timestamp int
	location  int
	nullField map[string]int
}

func normalizeAll(rows []domain.RawRow) ([]domain.SensorReading, dropStats) {
	stats := dropStats{nullField: map[string]int{}}
	readings := make([]domain.SensorReading, 0, len(rows))

	for _, raw := range rows {
		reading, err := domain.NormalizeRow(raw)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrBadTimestamp):
				stats.timestamp++
			case errors.Is(err, domain.ErrBadLocation):
				stats.location++
			}
			continue
		}

		channels := map[string]bool{
			domain.ColTemperature: reading.Temperature.Valid,
			domain.ColPressure:    reading.Pressure.Valid,
			domain.ColMotionX:     reading.MotionX.Valid,
			domain.ColMotionY:     reading.MotionY.Valid,
			domain.ColMotionZ:     reading.MotionZ.Valid,
		}
		for col, valid := range channels {
			if !valid {
				stats.nullField[col]++
			}
		}
		readings = append(readings, reading)
	}

	return readings, stats
}

// validateInvariants checks that every retained reading satisfies the
// mandatory-field rules and that derived magnitudes are consistent.
func validateInvariants(readings []domain.SensorReading) *phase {
	p := &phase{name: "reading invariants"}

	for i, r := range readings {
		if r.Timestamp.IsZero() {
			p.errorf("reading %d: zero timestamp retained", i)
		}
		if r.MotionMagnitude.Valid && (!r.MotionX.Valid || !r.MotionY.Valid || !r.MotionZ.Valid) {
			p.errorf("reading %d: magnitude present with a null axis", i)
		}
		if r.Event == "" {
			p.errorf("reading %d: empty event tag retained", i)
		}
	}

	return p
}

// validateEventTally checks the fixed tally never exceeds the retained count
// (unknown tags are outside the tally, so strict equality is not required).
func validateEventTally(readings []domain.SensorReading) *phase {
	p := &phase{name: "event tally"}

	known := 0
	for _, c := range domain.CountEvents(readings) {
		known += c.Count
	}
	if known > len(readings) {
		p.errorf("tally %d exceeds retained readings %d", known, len(readings))
	}

	return p
}

func printReport(candidateRows int, readings []domain.SensorReading, stats dropStats) {
	fmt.Printf("candidate rows:      %d\n", candidateRows)
	fmt.Printf("retained:            %d\n", len(readings))
	fmt.Printf("dropped (timestamp): %d\n", stats.timestamp)
	fmt.Printf("dropped (location):  %d\n", stats.location)

	cols := make([]string, 0, len(stats.nullField))
	for col := range stats.nullField {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		fmt.Printf("null %-15s %d\n", col+":", stats.nullField[col])
	}

	fmt.Println()
	fmt.Println("event tally (unfiltered):")
	for _, c := range domain.CountEvents(readings) {
		fmt.Printf("  %-16s %d\n", c.Event, c.Count)
	}
	fmt.Println()
}
