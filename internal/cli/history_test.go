package cli

import (
	"testing"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithHistory(t *testing.T) record.State {
	t.Helper()
	state := testutil.StateWithTarget("t1", "Civil Service 2024", "2024-11-24")
	state.Logs["t1"] = []record.SessionLog{
		testutil.SessionAt(t, "log-jan", "2024-01-05 09:00", record.CategoryVerbal, 10, 8, 30),
		testutil.SessionAt(t, "log-feb", "2024-02-05 09:00", record.CategoryLogic, 10, 6, 25),
	}
	state.Reviews["t1"] = []record.ReviewNote{
		testutil.NoteAt(t, "note-jan", "t1", "2024-01-06 20:00", "january reflection"),
		testutil.NoteAt(t, "note-feb", "t1", "2024-02-06 20:00", "february reflection"),
	}
	return state
}

func TestHistoryList(t *testing.T) {
	cli, _, _, stdout := newTestCLI(t, stateWithHistory(t))

	require.NoError(t, cli.HistoryList("", ""))
	assert.Contains(t, stdout.String(), "log-jan")
	assert.Contains(t, stdout.String(), "log-feb")

	stdout.Reset()
	require.NoError(t, cli.HistoryList("2024-01-01", "2024-01-31"))
	assert.Contains(t, stdout.String(), "log-jan")
	assert.NotContains(t, stdout.String(), "log-feb")
}

func TestHistoryDelete(t *testing.T) {
	tests := []struct {
		name         string
		answer       string
		expectedLogs []string
		expectedOut  string
	}{
		{
			name:         "confirmed",
			answer:       "y\n",
			expectedLogs: []string{"log-feb"},
			expectedOut:  "Session deleted.",
		},
		{
			name:         "cancelled",
			answer:       "n\n",
			expectedLogs: []string{"log-jan", "log-feb"},
			expectedOut:  "Cancelled.",
		},
		{
			name:         "empty answer cancels",
			answer:       "\n",
			expectedLogs: []string{"log-jan", "log-feb"},
			expectedOut:  "Cancelled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, fileStore, stdin, stdout := newTestCLI(t, stateWithHistory(t))
			stdin.WriteString(tt.answer)

			require.NoError(t, cli.HistoryDelete("log-jan"))
			assert.Contains(t, stdout.String(), tt.expectedOut)

			state, err := fileStore.Load()
			require.NoError(t, err)
			var ids []string
			for _, log := range state.Logs["t1"] {
				ids = append(ids, log.ID)
			}
			assert.Equal(t, tt.expectedLogs, ids)
		})
	}
}

func TestHistoryDelete_UnknownID(t *testing.T) {
	cli, _, stdin, stdout := newTestCLI(t, stateWithHistory(t))
	stdin.WriteString("y\n")

	require.NoError(t, cli.HistoryDelete("absent"))
	assert.Contains(t, stdout.String(), "No session with id absent.")
}

func TestWipe(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedLogs  int
		expectedNotes int
		expectedOut   string
	}{
		{
			name:          "full confirmation deletes the range",
			input:         "y\nDELETE\n",
			expectedLogs:  1,
			expectedNotes: 1,
			expectedOut:   "Deleted 1 sessions and 1 notes.",
		},
		{
			name:          "declining the warning keeps everything",
			input:         "n\n",
			expectedLogs:  2,
			expectedNotes: 2,
			expectedOut:   "Cancelled. Nothing was deleted.",
		},
		{
			name:          "wrong final word keeps everything",
			input:         "y\ndelete\n",
			expectedLogs:  2,
			expectedNotes: 2,
			expectedOut:   "Cancelled. Nothing was deleted.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, fileStore, stdin, stdout := newTestCLI(t, stateWithHistory(t))
			stdin.WriteString(tt.input)

			require.NoError(t, cli.Wipe("2024-01-01", "2024-01-31"))
			assert.Contains(t, stdout.String(), tt.expectedOut)

			state, err := fileStore.Load()
			require.NoError(t, err)
			assert.Len(t, state.Logs["t1"], tt.expectedLogs)
			assert.Len(t, state.Reviews["t1"], tt.expectedNotes)
		})
	}
}

func TestWipe_ShowsSizeBeforeFinalConfirm(t *testing.T) {
	cli, _, stdin, stdout := newTestCLI(t, stateWithHistory(t))
	stdin.WriteString("y\nDELETE\n")

	require.NoError(t, cli.Wipe("2024-01-01", "2024-01-31"))
	assert.Regexp(t, `About \d+(\.\d+)? (Bytes|KB) of records will be deleted`, stdout.String())
}

func TestWipe_RequiresBothDates(t *testing.T) {
	cli, fileStore, _, _ := newTestCLI(t, stateWithHistory(t))

	err := cli.Wipe("2024-01-01", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start and --end")

	state, loadErr := fileStore.Load()
	require.NoError(t, loadErr)
	assert.Len(t, state.Logs["t1"], 2, "nothing deleted")
}

func TestWipe_NoSelectedTargetIsNoOp(t *testing.T) {
	cli, fileStore, _, stdout := newTestCLI(t, record.NewState())

	require.NoError(t, cli.Wipe("2024-01-01", "2024-01-31"))
	assert.Contains(t, stdout.String(), "No exam target selected.")

	state, err := fileStore.Load()
	require.NoError(t, err)
	assert.Equal(t, record.NewState(), state)
}

func TestWipe_OnlyTouchesSelectedTargetPartition(t *testing.T) {
	state := stateWithHistory(t)
	state.Targets = append(state.Targets, record.ExamTarget{ID: "t2", Name: "Other", ExamDate: "2025-01-01"})
	state.Logs["t2"] = []record.SessionLog{
		testutil.SessionAt(t, "other-log", "2024-01-10 09:00", record.CategoryData, 10, 5, 20),
	}

	cli, fileStore, stdin, _ := newTestCLI(t, state)
	stdin.WriteString("y\nDELETE\n")

	require.NoError(t, cli.Wipe("2024-01-01", "2024-01-31"))

	loaded, err := fileStore.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Logs["t2"], 1, "other target's partition is untouched")
}
