package timerange

import (
	"testing"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inLocation pins the process-local zone for one test so day-boundary
// behavior around DST transitions is reproducible.
func inLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })
	return loc
}

func localMilli(t *testing.T, value string) int64 {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05.000", value, time.Local)
	require.NoError(t, err)
	return parsed.UnixMilli()
}

func TestDayBoundaries(t *testing.T) {
	start, err := DayStart("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, localMilli(t, "2024-01-02 00:00:00.000"), start.UnixMilli())

	end, err := DayEnd("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, localMilli(t, "2024-01-02 23:59:59.999"), end.UnixMilli())

	_, err = DayStart("not-a-date")
	assert.Error(t, err)
}

func TestDayBoundaries_AcrossDSTTransitions(t *testing.T) {
	loc := inLocation(t, "America/New_York")

	tests := []struct {
		name string
		date string
	}{
		{name: "25-hour fall-back day", date: "2024-11-03"},
		{name: "23-hour spring-forward day", date: "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := DayEnd(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.date+" 23:59:59.999", end.In(loc).Format("2006-01-02 15:04:05.000"))
		})
	}
}

func TestFilterLogs_IncludesLastHourOfFallBackDay(t *testing.T) {
	loc := inLocation(t, "America/New_York")

	// 23:30 on the 25-hour day; a fixed-24h end boundary would cut this off.
	lastHour := time.Date(2024, 11, 3, 23, 30, 0, 0, loc)
	logs := []record.SessionLog{{ID: "late", Timestamp: lastHour.UnixMilli()}}

	matched, err := FilterLogs(logs, "2024-11-01", "2024-11-03")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "late", matched[0].ID)
}

func TestFilterLogs(t *testing.T) {
	tests := []struct {
		name        string
		logs        []record.SessionLog
		start       string
		end         string
		expectedIDs []string
	}{
		{
			name: "log exactly at end of day is included",
			logs: []record.SessionLog{
				{ID: "boundary", Timestamp: localMilli(t, "2024-01-03 23:59:59.999")},
			},
			start:       "2024-01-01",
			end:         "2024-01-03",
			expectedIDs: []string{"boundary"},
		},
		{
			name: "log one millisecond past end is excluded",
			logs: []record.SessionLog{
				{ID: "past", Timestamp: localMilli(t, "2024-01-03 23:59:59.999") + 1},
			},
			start:       "2024-01-01",
			end:         "2024-01-03",
			expectedIDs: nil,
		},
		{
			name: "log exactly at start midnight is included",
			logs: []record.SessionLog{
				{ID: "midnight", Timestamp: localMilli(t, "2024-01-01 00:00:00.000")},
			},
			start:       "2024-01-01",
			end:         "2024-01-03",
			expectedIDs: []string{"midnight"},
		},
		{
			name: "missing timestamp falls back to date field",
			logs: []record.SessionLog{
				{ID: "dated", Date: "2024-01-02"},
				{ID: "outside", Date: "2024-02-02"},
			},
			start:       "2024-01-01",
			end:         "2024-01-03",
			expectedIDs: []string{"dated"},
		},
		{
			name: "input order is preserved",
			logs: []record.SessionLog{
				{ID: "b", Timestamp: localMilli(t, "2024-01-02 10:00:00.000")},
				{ID: "a", Timestamp: localMilli(t, "2024-01-01 10:00:00.000")},
			},
			start:       "2024-01-01",
			end:         "2024-01-03",
			expectedIDs: []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := FilterLogs(tt.logs, tt.start, tt.end)
			require.NoError(t, err)

			var ids []string
			for _, log := range matched {
				ids = append(ids, log.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterNotes(t *testing.T) {
	notes := []record.ReviewNote{
		{ID: "in", Timestamp: localMilli(t, "2024-01-02 08:00:00.000")},
		{ID: "out", Timestamp: localMilli(t, "2024-01-04 08:00:00.000")},
	}

	matched, err := FilterNotes(notes, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "in", matched[0].ID)
}

func TestFilterLogs_InvalidRange(t *testing.T) {
	_, err := FilterLogs(nil, "January", "2024-01-03")
	assert.Error(t, err)
}

func TestEstimateSize(t *testing.T) {
	logs := []record.SessionLog{
		{ID: "l1", Date: "2024-01-02", Timestamp: localMilli(t, "2024-01-02 09:00:00.000"), Categories: record.NewCategoryResults()},
	}
	notes := []record.ReviewNote{
		{ID: "n1", Timestamp: localMilli(t, "2024-01-02 10:00:00.000"), Content: "review mistakes"},
	}

	populated, err := EstimateSize(logs, notes, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Positive(t, populated)

	// A range matching nothing still serializes the empty envelope.
	empty, err := EstimateSize(logs, notes, "2023-01-01", "2023-01-03")
	require.NoError(t, err)
	assert.Positive(t, empty)
	assert.Less(t, empty, populated)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		decimals int
		expected string
	}{
		{name: "zero", n: 0, decimals: 2, expected: "0 Bytes"},
		{name: "bytes stay integral", n: 512, decimals: 2, expected: "512 Bytes"},
		{name: "kilobytes", n: 1536, decimals: 1, expected: "1.5 KB"},
		{name: "megabytes", n: 5 * 1024 * 1024, decimals: 0, expected: "5 MB"},
		{name: "gigabytes", n: 3 * 1024 * 1024 * 1024, decimals: 2, expected: "3.00 GB"},
		{name: "negative decimals clamp to zero", n: 2048, decimals: -3, expected: "2 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.n, tt.decimals))
		})
	}
}
