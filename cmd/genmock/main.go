// Command genmock generates a synthetic forest-sensor CSV fixture. It writes
// mostly clean readings plus a controlled sprinkling of the malformed shapes
// the normalizer must tolerate: blank numeric channels, garbage values,
// missing timestamps, and broken locations.
//
// Usage:
//
//	go run ./cmd/genmock -out data/forest_sensor_data.csv -rows 200 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

// Sensor cluster near the Nilgiri forest range; markers should land in a
// believable patch of map rather than scattering across the globe.
const (
	baseLat = 11.41
	baseLon = 76.69
)

func main() {
	out := flag.String("out", "data/forest_sensor_data.csv", "output CSV path")
	rows := flag.Int("rows", 200, "number of data rows to generate")
	seed := flag.Int64("seed", 42, "random seed for reproducible fixtures")
	start := flag.String("start", "2026-08-14T06:00:00Z", "timestamp of the first reading (RFC3339)")
	flag.Parse()

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		log.Fatalf("invalid -start: %v", err)
	}

	if err := run(*out, *rows, *seed, startTime); err != nil {
		log.Fatal(err)
	}
}

func run(out string, rows int, seed int64, start time.Time) error {
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		domain.ColTimestamp, domain.ColTemperature, domain.ColPressure,
		domain.ColMotionX, domain.ColMotionY, domain.ColMotionZ,
		domain.ColLocation, domain.ColEvent,
	}
	if err := w.Write(header); err != nil {
		return err
	}

	stats := map[string]int{}
	for i := 0; i < rows; i++ {
		record := makeRow(rng, start.Add(time.Duration(i)*time.Minute), stats)
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("wrote %d rows to %s", rows, out)
	for kind, n := range stats {
		log.Printf("  %s: %d", kind, n)
	}
	return nil
}

// makeRow produces one CSV record. Roughly 1 in 10 rows carries a defect so
// the dashboard's drop and null handling has something to chew on.
func makeRow(rng *rand.Rand, ts time.Time, stats map[string]int) []string {
	temp := 18 + 12*rng.Float64()
	pressure := 1000 + 25*rng.Float64()
	x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
	lat := baseLat + (rng.Float64()-0.5)*0.2
	lon := baseLon + (rng.Float64()-0.5)*0.2

	event := domain.EventNone
	switch {
	case temp > 28 && rng.Float64() < 0.8:
		event = domain.EventFireRisk
	case math.Abs(x)+math.Abs(y)+math.Abs(z) > 3.5:
		event = domain.EventMotionDetected
	}

	record := []string{
		ts.Format(time.RFC3339),
		formatFloat(temp),
		formatFloat(pressure),
		formatFloat(x),
		formatFloat(y),
		formatFloat(z),
		fmt.Sprintf("%.4f,%.4f", lat, lon),
		event,
	}

	switch defect := rng.Intn(40); defect {
	case 0:
		record[1] = "" // silent temperature channel
		stats["empty_temperature"]++
	case 1:
		record[1] = "sensor-fault"
		stats["garbage_temperature"]++
	case 2:
		record[4] = "" // one dead motion axis nulls the magnitude
		stats["empty_motion_axis"]++
	case 3:
		record[0] = "" // dropped: no timestamp
		stats["missing_timestamp"]++
	case 4:
		record[6] = "bad" // dropped: malformed location
		stats["bad_location"]++
	case 5:
		record[7] = "" // defaults to None
		stats["empty_event"]++
	default:
		stats["clean"]++
	}

	return record
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
