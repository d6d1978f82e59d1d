package models

import "time"

// CalendarEvent is one renderable calendar entry: either a session or one
// half of a day-off pair (background stripe plus labelled foreground).
// It is derived on every projection and never persisted.
type CalendarEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	AllDay     bool      `json:"allDay"`
	ClassName  string    `json:"className,omitempty"` // status-derived visual class
	Background bool      `json:"background"`          // non-interactive shading layer
	SessionID  string    `json:"sessionId,omitempty"`
	DayOffID   string    `json:"dayOffId,omitempty"`
	Paid       bool      `json:"paid,omitempty"` // payment settled for the session
}
