package models

import "time"

// SubmissionAttempt is a single diagnostic log entry for a submit call.
type SubmissionAttempt struct {
	AttemptID   string    `json:"attempt_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Outcome     string    `json:"outcome"` // SUCCESS | TRANSPORT_ERROR | SERVER_REJECTION
	SessionID   string    `json:"session_id,omitempty"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
