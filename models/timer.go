package models

import "fmt"

// TimerSnapshot is a read-only view of the countdown state.
type TimerSnapshot struct {
	Remaining int
	Total     int
	Running   bool
	Completed bool
}

// Clock renders the remaining time as zero-padded MM:SS.
func (s TimerSnapshot) Clock() string {
	return FormatClock(s.Remaining)
}

// Progress is the elapsed share of the countdown in percent.
func (s TimerSnapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Total-s.Remaining) / float64(s.Total) * 100
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not wrapped
// at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
