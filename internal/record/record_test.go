package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryResults(t *testing.T) {
	results := NewCategoryResults()

	assert.Len(t, results, len(Categories))
	for _, c := range Categories {
		record, ok := results[c]
		assert.True(t, ok, "category %s should be present", c)
		assert.Equal(t, QuestionRecord{}, record)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   Category
		expectedOK bool
	}{
		{
			name:       "known category",
			input:      "logic",
			expected:   CategoryLogic,
			expectedOK: true,
		},
		{
			name:       "unknown category",
			input:      "history",
			expectedOK: false,
		},
		{
			name:       "display name is not an identifier",
			input:      "Logical Reasoning",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestExamTarget_DaysLeft(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		examDate string
		expected int
	}{
		{
			name:     "exam in the future",
			examDate: "2024-03-17",
			expected: 7,
		},
		{
			name:     "exam today",
			examDate: "2024-03-10",
			expected: 0,
		},
		{
			name:     "exam already passed",
			examDate: "2024-03-08",
			expected: -2,
		},
		{
			name:     "malformed exam date",
			examDate: "soon",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := ExamTarget{ID: "t1", Name: "Civil Service", ExamDate: tt.examDate}
			assert.Equal(t, tt.expected, target.DaysLeft(now))
		})
	}
}

func TestExamTarget_DaysLeft_AcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })

	// The 2024-03-10 spring-forward transition sits between now and the
	// exam; the countdown must still be whole calendar days.
	now := time.Date(2024, 3, 8, 15, 0, 0, 0, loc)
	target := ExamTarget{ID: "t1", Name: "Civil Service", ExamDate: "2024-03-12"}
	assert.Equal(t, 4, target.DaysLeft(now))
}

func TestState_SelectedTarget(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		expectedID string
		expectedOK bool
	}{
		{
			name:       "no selection",
			state:      NewState(),
			expectedOK: false,
		},
		{
			name: "selection points at existing target",
			state: State{
				Targets:          []ExamTarget{{ID: "t1"}, {ID: "t2"}},
				SelectedTargetID: "t2",
			},
			expectedID: "t2",
			expectedOK: true,
		},
		{
			name: "selection points at removed target",
			state: State{
				Targets:          []ExamTarget{{ID: "t1"}},
				SelectedTargetID: "gone",
			},
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := tt.state.SelectedTarget()
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedID, target.ID)
			}
		})
	}
}

func TestState_SelectedPartitions(t *testing.T) {
	state := State{
		Targets:          []ExamTarget{{ID: "t1"}, {ID: "t2"}},
		SelectedTargetID: "t1",
		Logs: map[string][]SessionLog{
			"t1": {{ID: "log-1"}},
			"t2": {{ID: "log-2"}},
		},
		Reviews: map[string][]ReviewNote{
			"t2": {{ID: "note-2"}},
		},
	}

	logs := state.SelectedLogs()
	assert.Len(t, logs, 1)
	assert.Equal(t, "log-1", logs[0].ID)

	// t1 has no notes; the other target's partition must stay invisible.
	assert.Empty(t, state.SelectedReviews())
}
