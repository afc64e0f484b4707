package models

import "time"

// TimestampLayout matches the ISO-8601 form browsers produce for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// LunchSelection is the live content of the lunch form.
type LunchSelection struct {
	Name string `json:"name"`
	Menu string `json:"menu"`
}

// SubmissionRecord is what gets posted to the sheet and cached on success.
type SubmissionRecord struct {
	Name      string `json:"name"`
	Menu      string `json:"menu"`
	Timestamp string `json:"timestamp"`
}

// NewSubmissionRecord stamps a selection with the given instant (rendered in UTC).
func NewSubmissionRecord(sel LunchSelection, at time.Time) SubmissionRecord {
	return SubmissionRecord{
		Name:      sel.Name,
		Menu:      sel.Menu,
		Timestamp: at.UTC().Format(TimestampLayout),
	}
}

// FormState is a read of one session's form plus the derived gating flags.
type FormState struct {
	SessionID string         `json:"session_id"`
	Selection LunchSelection `json:"selection"`
	CanSubmit bool           `json:"can_submit"`
	InFlight  bool           `json:"in_flight"`
}
