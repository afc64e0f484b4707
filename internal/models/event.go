package models

import "time"

// AgendaItem is one line of the printed schedule.
type AgendaItem struct {
	Time string `json:"time" mapstructure:"time"`
	Text string `json:"text" mapstructure:"text"`
}

// Instructor is the speaker card shown next to the agenda.
type Instructor struct {
	Name      string   `json:"name" mapstructure:"name"`
	PhotoURL  string   `json:"photo_url,omitempty" mapstructure:"photo_url"`
	Education string   `json:"education,omitempty" mapstructure:"education"`
	Career    []string `json:"career,omitempty" mapstructure:"career"`
	Expertise string   `json:"expertise,omitempty" mapstructure:"expertise"`
}

// EventMeta describes the training day. Built once at startup and never mutated.
type EventMeta struct {
	Title         string       `json:"title"`
	DateLabel     string       `json:"date_label"`
	DurationLabel string       `json:"duration_label"`
	StartsAt      time.Time    `json:"starts_at"`
	EndsAt        time.Time    `json:"ends_at"`
	PlaceName     string       `json:"place_name"`
	PlaceAddress  string       `json:"place_address"`
	LunchPlace    string       `json:"lunch_place"`
	Agenda        []AgendaItem `json:"agenda,omitempty"`
	Instructor    *Instructor  `json:"instructor,omitempty"`
}
