package models

import "fmt"

// CountdownState is the time left until the event starts.
type CountdownState struct {
	Days     int64 `json:"days"`
	Hours    int   `json:"hours"`   // 0..23
	Minutes  int   `json:"minutes"` // 0..59
	Seconds  int   `json:"seconds"` // 0..59
	Finished bool  `json:"finished"`
}

// Label renders the state the way the briefing page prints it, e.g. "1일 1시간 1분 1초".
func (c CountdownState) Label() string {
	return fmt.Sprintf("%d일 %d시간 %d분 %d초", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// TotalSeconds folds the breakdown back into whole seconds.
func (c CountdownState) TotalSeconds() int64 {
	return c.Days*86400 + int64(c.Hours)*3600 + int64(c.Minutes)*60 + int64(c.Seconds)
}
