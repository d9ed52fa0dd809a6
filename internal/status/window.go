package status

import (
	"time"

	dom "Motiv/internal/domain"
)

type WindowState int

const (
	WindowUnknown WindowState = iota
	WindowNotYetOpen
	WindowOpen
	WindowClosed
	WindowDecided
)

func (s WindowState) String() string {
	switch s {
	case WindowNotYetOpen:
		return "not_yet_open"
	case WindowOpen:
		return "open"
	case WindowClosed:
		return "closed"
	case WindowDecided:
		return "decided"
	}
	return "unknown"
}

// SupervisionWindow is the interval in which a supervisor may record a
// decision. OpensAt and ClosesAt are zero when the window cannot be computed.
type SupervisionWindow struct {
	State    WindowState
	OpensAt  time.Time
	ClosesAt time.Time
}

// Open reports whether a decision can be recorded now.
func (w SupervisionWindow) Open() bool {
	return w.State == WindowOpen
}

// Window computes the supervision window of g. It opens
// SupervisionTimeoutHours before the deadline and closes at the deadline,
// both ends inclusive.
func Window(g dom.Goal, rules dom.Rules, now time.Time) SupervisionWindow {
	var w SupervisionWindow
	if g.Deadline != nil && rules.SupervisionTimeoutHours > 0 {
		w.ClosesAt = *g.Deadline
		w.OpensAt = g.Deadline.Add(-time.Duration(rules.SupervisionTimeoutHours) * time.Hour)
	}

	switch {
	case g.Supervised():
		w.State = WindowDecided
	case w.ClosesAt.IsZero():
		w.State = WindowUnknown
	case now.Before(w.OpensAt):
		w.State = WindowNotYetOpen
	case now.After(w.ClosesAt):
		w.State = WindowClosed
	default:
		w.State = WindowOpen
	}
	return w
}
