// Package testutil provides shared test helpers for seeding state files
// and building session fixtures.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/store"
	"github.com/stretchr/testify/require"
)

// StatePath returns a state file path inside a fresh temp directory.
func StatePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.yml")
}

// StateWithTarget builds a state holding one selected target with empty
// partitions.
func StateWithTarget(id, name, examDate string) record.State {
	state := record.NewState()
	state.Targets = append(state.Targets, record.ExamTarget{ID: id, Name: name, ExamDate: examDate})
	state.SelectedTargetID = id
	state.Logs[id] = []record.SessionLog{}
	state.Reviews[id] = []record.ReviewNote{}
	return state
}

// SeedState writes the state to the path through the real file store.
func SeedState(t *testing.T, path string, state record.State) {
	t.Helper()
	require.NoError(t, store.NewFileStore(path).Save(state))
}

// SessionAt builds a session log at a local date+time with a tally in one
// category.
func SessionAt(t *testing.T, id, at string, category record.Category, total, correct, duration int) record.SessionLog {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04", at, time.Local)
	require.NoError(t, err)

	categories := record.NewCategoryResults()
	categories[category] = record.QuestionRecord{Total: total, Correct: correct, Duration: duration}
	return record.SessionLog{
		ID:         id,
		Date:       instant.Format("2006-01-02"),
		Timestamp:  instant.UnixMilli(),
		Categories: categories,
	}
}

// NoteAt builds a review note at a local date+time.
func NoteAt(t *testing.T, id, targetID, at, content string) record.ReviewNote {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04", at, time.Local)
	require.NoError(t, err)
	return record.ReviewNote{
		ID:        id,
		Date:      at,
		Content:   content,
		TargetID:  targetID,
		Timestamp: instant.UnixMilli(),
	}
}
