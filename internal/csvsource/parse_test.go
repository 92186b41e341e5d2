package csvsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nancy240/Forest-monitoring-data/internal/domain"
)

const sampleCSV = `timestamp,temperature,pressure,motion_x,motion_y,motion_z,location,event
2026-08-14T10:15:00Z,24.5,1012.3,3,4,0,"13.08,80.27",fire_risk
2026-08-14T10:16:00Z,,1011.9,0.1,0.2,0.3,"13.09,80.28",
`

func TestParse(t *testing.T) {
	t.Run("header detection and row mapping", func(t *testing.T) {
		rows, err := Parse(strings.NewReader(sampleCSV))

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "24.5", rows[0][domain.ColTemperature])
		assert.Equal(t, "13.08,80.27", rows[0][domain.ColLocation])
		assert.Equal(t, "fire_risk", rows[0][domain.ColEvent])
		assert.Equal(t, "", rows[1][domain.ColTemperature])
	})

	t.Run("headers are trimmed unquoted and lowercased", func(t *testing.T) {
		csv := "\" Timestamp \",'Event'\n2026-08-14T10:15:00Z,fire_risk\n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2026-08-14T10:15:00Z", rows[0][domain.ColTimestamp])
		assert.Equal(t, "fire_risk", rows[0][domain.ColEvent])
	})

	t.Run("values are trimmed and unquoted", func(t *testing.T) {
		csv := "timestamp,event\n'2026-08-14T10:15:00Z' ,  fire_risk \n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2026-08-14T10:15:00Z", rows[0][domain.ColTimestamp])
		assert.Equal(t, "fire_risk", rows[0][domain.ColEvent])
	})

	t.Run("all-empty rows are skipped", func(t *testing.T) {
		csv := "timestamp,event\n,\n2026-08-14T10:15:00Z,fire_risk\n , \n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("short records are padded", func(t *testing.T) {
		csv := "timestamp,temperature,event\n2026-08-14T10:15:00Z\n"

		rows, err := Parse(strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "", rows[0][domain.ColTemperature])
		assert.Equal(t, "", rows[0][domain.ColEvent])
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header row")
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		rows, err := Parse(strings.NewReader("timestamp,event\n"))

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "abc", "abc"},
		{"whitespace", "  abc  ", "abc"},
		{"double quoted", `"abc"`, "abc"},
		{"single quoted", "'abc'", "abc"},
		{"nested quotes and spaces", ` "' abc '" `, "abc"},
		{"lone quote kept", `"abc`, `"abc`},
		{"empty", "", ""},
		{"quote pair only", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clean(tt.input))
		})
	}
}
