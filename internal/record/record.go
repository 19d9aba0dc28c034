// Package record defines the entities a practice tracker persists: exam
// targets, per-session question tallies, and free-text review notes.
package record

import (
	"time"
)

// Category is one of the five fixed subject areas a practice session
// reports against.
type Category string

const (
	CategoryVerbal      Category = "verbal"
	CategoryPolitics    Category = "politics"
	CategoryCommonSense Category = "common_sense"
	CategoryLogic       Category = "logic"
	CategoryData        Category = "data"
)

// Categories is the canonical enumeration order. Every loop over categories
// (totals, chart series, CSV columns) iterates this slice so output order
// never depends on map iteration.
var Categories = []Category{
	CategoryVerbal,
	CategoryPolitics,
	CategoryCommonSense,
	CategoryLogic,
	CategoryData,
}

// DisplayName returns the human-readable label for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVerbal:
		return "Verbal Comprehension"
	case CategoryPolitics:
		return "Political Judgment"
	case CategoryCommonSense:
		return "Common-Sense Judgment"
	case CategoryLogic:
		return "Logical Reasoning"
	case CategoryData:
		return "Data Analysis"
	}
	return string(c)
}

// ParseCategory maps a category identifier to its Category, reporting
// whether the identifier is one of the five known values.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// QuestionRecord is one category's tally within a session. Correct <= Total
// is enforced when input is collected, not here; aggregation accepts the
// values as stored.
type QuestionRecord struct {
	Total    int `yaml:"total" validate:"gte=0"`
	Correct  int `yaml:"correct" validate:"gte=0,ltefield=Total"`
	Duration int `yaml:"duration" validate:"gte=0"` // minutes
}

// CategoryResults maps every category to exactly one QuestionRecord. All
// five keys are always present, zero-valued if unused.
type CategoryResults map[Category]QuestionRecord

// NewCategoryResults returns a CategoryResults with all five keys zero-filled.
func NewCategoryResults() CategoryResults {
	results := make(CategoryResults, len(Categories))
	for _, c := range Categories {
		results[c] = QuestionRecord{}
	}
	return results
}

// SessionLog is one practice check-in. Timestamp is authoritative for
// ordering and time-of-day; Date only keys day buckets.
type SessionLog struct {
	ID         string          `yaml:"id"`
	Date       string          `yaml:"date"`      // YYYY-MM-DD, local calendar date
	Timestamp  int64           `yaml:"timestamp"` // milliseconds since epoch
	Categories CategoryResults `yaml:"categories"`
}

// ReviewNote is a free-text reflection owned by one target. Notes are never
// edited; they go away only through range deletion.
type ReviewNote struct {
	ID        string `yaml:"id"`
	Date      string `yaml:"date"` // date+time display string
	Content   string `yaml:"content" validate:"required"`
	TargetID  string `yaml:"targetId"`
	Timestamp int64  `yaml:"timestamp"`
}

// ExamTarget is a named exam goal. It owns its own partition of logs and
// notes, keyed by ID in State.
type ExamTarget struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name" validate:"required"`
	ExamDate string `yaml:"examDate" validate:"required"` // YYYY-MM-DD
}

// DaysLeft returns the number of calendar days from now's local date to the
// exam date, negative once the exam has passed. A malformed exam date
// counts as zero days.
func (t ExamTarget) DaysLeft(now time.Time) int {
	examDay, err := time.ParseInLocation("2006-01-02", t.ExamDate, time.Local)
	if err != nil {
		return 0
	}
	// Re-anchor both midnights in UTC so a DST transition between the two
	// dates cannot shave the duration below a whole day.
	exam := time.Date(examDay.Year(), examDay.Month(), examDay.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(exam.Sub(today).Hours() / 24)
}

// State is the whole persisted application state: every target plus each
// target's partition of logs and review notes.
type State struct {
	Targets          []ExamTarget            `yaml:"targets"`
	SelectedTargetID string                  `yaml:"selectedTargetId,omitempty"`
	Logs             map[string][]SessionLog `yaml:"logs"`
	Reviews          map[string][]ReviewNote `yaml:"reviews"`
}

// NewState returns an empty default state with initialized partitions.
func NewState() State {
	return State{
		Targets: []ExamTarget{},
		Logs:    map[string][]SessionLog{},
		Reviews: map[string][]ReviewNote{},
	}
}

// SelectedTarget returns the currently selected target, or false when no
// target is selected or the selection points at a removed target.
func (s State) SelectedTarget() (ExamTarget, bool) {
	if s.SelectedTargetID == "" {
		return ExamTarget{}, false
	}
	for _, t := range s.Targets {
		if t.ID == s.SelectedTargetID {
			return t, true
		}
	}
	return ExamTarget{}, false
}

// SelectedLogs returns the selected target's session logs. Other targets'
// partitions are never visible through this accessor.
func (s State) SelectedLogs() []SessionLog {
	return s.Logs[s.SelectedTargetID]
}

// SelectedReviews returns the selected target's review notes.
func (s State) SelectedReviews() []ReviewNote {
	return s.Reviews[s.SelectedTargetID]
}
