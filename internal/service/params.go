package service

import "time"

// FormUpdate carries a partial edit of the lunch form. Nil fields are left alone.
type FormUpdate struct {
	Name *string
	Menu *string
}

// AttemptFilter narrows the diagnostic attempt log.
type AttemptFilter struct {
	From    time.Time // inclusive; zero means no lower bound
	To      time.Time // inclusive; zero means no upper bound
	Outcome string    // "", "SUCCESS", "TRANSPORT_ERROR", "SERVER_REJECTION"
}
