// Package status derives the display state of a goal from its record and the
// current instant. Nothing here reads the clock; callers pass now.
package status

import (
	"strconv"
	"time"

	"Motiv/internal/calendar"
	dom "Motiv/internal/domain"
)

type DeadlineState int

const (
	DeadlineUnknown DeadlineState = iota
	DeadlineActive
	DeadlineExpired
	DeadlineCompleted
)

func (s DeadlineState) String() string {
	switch s {
	case DeadlineActive:
		return "active"
	case DeadlineExpired:
		return "expired"
	case DeadlineCompleted:
		return "completed"
	}
	return "unknown"
}

// Label is the Persian badge text.
func (s DeadlineState) Label() string {
	switch s {
	case DeadlineActive:
		return "فعال"
	case DeadlineExpired:
		return "منقضی شده"
	case DeadlineCompleted:
		return "تکمیل شده"
	}
	return "نامشخص"
}

type SupervisionState int

const (
	SupervisionNone SupervisionState = iota
	SupervisionApproved
	SupervisionRejected
	SupervisionNotSupervised
)

func (s SupervisionState) String() string {
	switch s {
	case SupervisionApproved:
		return "approved"
	case SupervisionRejected:
		return "rejected"
	case SupervisionNotSupervised:
		return "not_supervised"
	}
	return "none"
}

// Label is the Persian badge text. None has no badge.
func (s SupervisionState) Label() string {
	switch s {
	case SupervisionApproved:
		return "تایید شده"
	case SupervisionRejected:
		return "رد شده"
	case SupervisionNotSupervised:
		return "نظارت نشده"
	}
	return ""
}

// Sort priorities. Lower values need attention sooner.
const (
	PriorityActive   = 1
	PriorityExpired  = 2
	PriorityResolved = 3
	PriorityUnknown  = 4
)

const (
	RowActive   = "row-active"
	RowExpired  = "row-expired"
	RowApproved = "row-approved"
	RowRejected = "row-rejected"
	RowUnknown  = "row-unknown"
)

const noteSeparator = " - "

// Status is the derived view of one goal at one instant.
type Status struct {
	Deadline           DeadlineState
	Supervision        SupervisionState
	Tooltip            string
	SupervisionTooltip string
	RowClass           string
	Priority           int
	// RemainingDays is set only while the goal is active.
	RemainingDays int64
}

// Derive computes the status of g at now. A goal without a deadline that has
// not been supervised yields DeadlineUnknown instead of failing.
func Derive(g dom.Goal, now time.Time) Status {
	var st Status

	switch {
	case g.Supervised():
		st.Deadline = DeadlineCompleted
		st.Tooltip = "فرآیند در تاریخ " + calendar.FormatDate(*g.SupervisedAt) + " تکمیل شد"
	case g.Deadline == nil:
		st.Deadline = DeadlineUnknown
		st.Tooltip = "مهلت این هدف مشخص نیست"
	case !now.Before(*g.Deadline):
		st.Deadline = DeadlineExpired
		st.Tooltip = "مهلت در تاریخ " + calendar.FormatDate(*g.Deadline) + " به پایان رسید"
	default:
		st.Deadline = DeadlineActive
		st.RemainingDays = remainingDays(*g.Deadline, now)
		if st.RemainingDays > 0 {
			st.Tooltip = strconv.FormatInt(st.RemainingDays, 10) + " روز تا پایان مهلت"
		} else {
			st.Tooltip = "کمتر از یک روز تا پایان مهلت"
		}
	}

	switch {
	case g.Supervised() && g.Done:
		st.Supervision = SupervisionApproved
		st.SupervisionTooltip = withNote("ناظر انجام هدف را تایید کرده است", g.SupervisorNote)
	case g.Supervised():
		st.Supervision = SupervisionRejected
		st.SupervisionTooltip = withNote("ناظر انجام هدف را رد کرده است", g.SupervisorNote)
	case st.Deadline == DeadlineExpired:
		st.Supervision = SupervisionNotSupervised
		st.SupervisionTooltip = "مهلت به پایان رسیده و هدف نظارت نشده است"
	default:
		st.Supervision = SupervisionNone
	}

	st.Priority = priorityOf(st.Deadline)
	st.RowClass = rowClass(st)
	return st
}

// Priority is the sort priority of g at now.
func Priority(g dom.Goal, now time.Time) int {
	switch {
	case g.Supervised():
		return PriorityResolved
	case g.Deadline == nil:
		return PriorityUnknown
	case now.Before(*g.Deadline):
		return PriorityActive
	}
	return PriorityExpired
}

func priorityOf(s DeadlineState) int {
	switch s {
	case DeadlineActive:
		return PriorityActive
	case DeadlineExpired:
		return PriorityExpired
	case DeadlineCompleted:
		return PriorityResolved
	}
	return PriorityUnknown
}

func rowClass(st Status) string {
	switch st.Supervision {
	case SupervisionApproved:
		return RowApproved
	case SupervisionRejected:
		return RowRejected
	}
	switch st.Deadline {
	case DeadlineActive:
		return RowActive
	case DeadlineExpired:
		return RowExpired
	}
	return RowUnknown
}

// remainingDays is ceil((deadline-now)/1d) over the full duration.
func remainingDays(deadline, now time.Time) int64 {
	const day = 24 * time.Hour
	d := deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64((d + day - 1) / day)
}

func withNote(text, note string) string {
	if note == "" {
		return text
	}
	return text + noteSeparator + note
}
