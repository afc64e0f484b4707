package models

// Briefing is everything the page needs on first paint.
type Briefing struct {
	Event          EventMeta      `json:"event"`
	Menus          []string       `json:"menus"`
	Countdown      CountdownState `json:"countdown"`
	CountdownLabel string         `json:"countdown_label"`
}
