// Package purge gates irreversible bulk deletion behind a staged
// confirmation flow. The destructive step fires on exactly one transition;
// every earlier stage can abort with zero side effects, and a restarted
// flow never sees a stale size estimate.
package purge

import (
	"errors"
	"fmt"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/timerange"
)

// Stage is the deletion flow's current position.
type Stage int

const (
	StageIdle Stage = iota
	StageRangePick
	StageWarn
	StageFinalConfirm
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageRangePick:
		return "range-pick"
	case StageWarn:
		return "warn"
	case StageFinalConfirm:
		return "final-confirm"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ErrMissingRange is returned when the flow is asked to advance past range
// picking without both a start and an end date.
var ErrMissingRange = errors.New("both start and end dates are required")

// Flow is the four-stage range deletion state machine. The zero value is an
// idle flow.
type Flow struct {
	stage    Stage
	start    string
	end      string
	estimate int64
}

// Stage reports the current stage.
func (f *Flow) Stage() Stage {
	return f.stage
}

// Range returns the picked range while one is held.
func (f *Flow) Range() (start, end string) {
	return f.start, f.end
}

// Estimate returns the size captured when the flow was armed. Only valid at
// StageFinalConfirm.
func (f *Flow) Estimate() int64 {
	return f.estimate
}

// Begin opens the flow: Idle -> RangePick.
func (f *Flow) Begin() error {
	if f.stage != StageIdle {
		return fmt.Errorf("cannot begin from %s", f.stage)
	}
	f.stage = StageRangePick
	return nil
}

// PickRange records the target range: RangePick -> Warn. With either date
// missing the flow stays at RangePick and nothing is recorded.
func (f *Flow) PickRange(start, end string) error {
	if f.stage != StageRangePick {
		return fmt.Errorf("cannot pick a range from %s", f.stage)
	}
	if start == "" || end == "" {
		return ErrMissingRange
	}
	f.start = start
	f.end = end
	f.stage = StageWarn
	return nil
}

// Arm computes and captures the size of the pending deletion: Warn ->
// FinalConfirm. The size is captured exactly once here so the confirmation
// prompt shows a stable number.
func (f *Flow) Arm(logs []record.SessionLog, notes []record.ReviewNote) (int64, error) {
	if f.stage != StageWarn {
		return 0, fmt.Errorf("cannot arm from %s", f.stage)
	}
	estimate, err := timerange.EstimateSize(logs, notes, f.start, f.end)
	if err != nil {
		return 0, fmt.Errorf("timerange.EstimateSize(%s, %s) > %w", f.start, f.end, err)
	}
	f.estimate = estimate
	f.stage = StageFinalConfirm
	return estimate, nil
}

// Execute performs the deletion: FinalConfirm -> Idle. It returns the logs
// and notes that survive (everything outside the picked range); the caller
// persists them. All transient state is cleared before returning.
func (f *Flow) Execute(logs []record.SessionLog, notes []record.ReviewNote) ([]record.SessionLog, []record.ReviewNote, error) {
	if f.stage != StageFinalConfirm {
		return nil, nil, fmt.Errorf("cannot execute from %s", f.stage)
	}

	doomedLogs, err := timerange.FilterLogs(logs, f.start, f.end)
	if err != nil {
		return nil, nil, err
	}
	doomedNotes, err := timerange.FilterNotes(notes, f.start, f.end)
	if err != nil {
		return nil, nil, err
	}

	doomedLogIDs := make(map[string]struct{}, len(doomedLogs))
	for _, log := range doomedLogs {
		doomedLogIDs[log.ID] = struct{}{}
	}
	doomedNoteIDs := make(map[string]struct{}, len(doomedNotes))
	for _, note := range doomedNotes {
		doomedNoteIDs[note.ID] = struct{}{}
	}

	var keptLogs []record.SessionLog
	for _, log := range logs {
		if _, doomed := doomedLogIDs[log.ID]; !doomed {
			keptLogs = append(keptLogs, log)
		}
	}
	var keptNotes []record.ReviewNote
	for _, note := range notes {
		if _, doomed := doomedNoteIDs[note.ID]; !doomed {
			keptNotes = append(keptNotes, note)
		}
	}

	f.reset()
	return keptLogs, keptNotes, nil
}

// Abort resets the flow to Idle from any stage with no side effects.
func (f *Flow) Abort() {
	f.reset()
}

func (f *Flow) reset() {
	f.stage = StageIdle
	f.start = ""
	f.end = ""
	f.estimate = 0
}

// SingleConfirm is the two-state confirmation for deleting one log by id,
// independent of the range flow.
type SingleConfirm struct {
	pendingID string
}

// Request marks a log id as pending deletion, replacing any earlier
// pending id.
func (c *SingleConfirm) Request(id string) {
	c.pendingID = id
}

// Pending returns the id awaiting confirmation, if any.
func (c *SingleConfirm) Pending() (string, bool) {
	return c.pendingID, c.pendingID != ""
}

// Confirm returns the pending id and clears it. The second return is false
// when nothing was pending.
func (c *SingleConfirm) Confirm() (string, bool) {
	id := c.pendingID
	c.pendingID = ""
	return id, id != ""
}

// Cancel drops the pending id without deleting anything.
func (c *SingleConfirm) Cancel() {
	c.pendingID = ""
}

// DeleteLog removes the log with the given id, reporting whether it was
// present.
func DeleteLog(logs []record.SessionLog, id string) ([]record.SessionLog, bool) {
	for i, log := range logs {
		if log.ID == id {
			return append(logs[:i:i], logs[i+1:]...), true
		}
	}
	return logs, false
}
