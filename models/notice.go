package models

import "time"

// Severity distinguishes how a notice is rendered.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notice is a transient, auto-dismissing message for the user.
type Notice struct {
	Message  string
	Severity Severity
	// At is when the notice was published.
	At time.Time
}
