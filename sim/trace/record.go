// Package trace provides event recording for a simulated salon day.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// EventKind identifies what happened at the salon.
type EventKind string

const (
	KindOpened  EventKind = "opened"
	KindEntered EventKind = "entered"
	KindStarted EventKind = "started"
	KindEnded   EventKind = "ended"
	KindLeft    EventKind = "left"
)

// Record captures a single salon event.
type Record struct {
	Clock    string // HH:MM simulated time of the event
	Kind     EventKind
	Customer string // empty for KindOpened
	Stylist  string // set for KindStarted and KindEnded
	Mood     string // set for KindLeft
}
