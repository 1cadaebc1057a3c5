package models

import "time"

// Preset is a named countdown target.
type Preset struct {
	Name      string
	Target    string
	CreatedAt time.Time
}

// Completion records a countdown that reached zero.
type Completion struct {
	ID          int64
	Target      string
	Preset      string
	CompletedAt time.Time
}
