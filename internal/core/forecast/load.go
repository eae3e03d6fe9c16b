package forecast

import (
	"errors"
	"time"
)

// Status is the state of a forecast load
type Status uint8

const (
	// StatusPending means the fetch has not finished
	StatusPending Status = iota
	// StatusResolved means entries are available
	StatusResolved
	// StatusFailed means the fetch failed and Reason explains why
	StatusFailed
)

// String returns the lowercase status name
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Load tracks one fetch-then-decode cycle
// a Load leaves Pending exactly once, Resolve and Fail on a settled Load return it unchanged
type Load struct {
	ID         string
	Status     Status
	Entries    []Entry
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Pending starts a load
func Pending(id string, now time.Time) Load {
	return Load{ID: id, Status: StatusPending, StartedAt: now}
}

// Resolve settles the load with entries
func (l Load) Resolve(entries []Entry, now time.Time) Load {
	if l.Status != StatusPending {
		return l
	}
	l.Status = StatusResolved
	l.Entries = entries
	l.FinishedAt = now
	return l
}

// Fail settles the load with err
func (l Load) Fail(err error, now time.Time) Load {
	if l.Status != StatusPending {
		return l
	}
	l.Status = StatusFailed
	l.Err = err
	l.FinishedAt = now
	return l
}

// messager is satisfied by errors that carry a display message apart from their cause
type messager interface{ Message() string }

// Reason is the display message of a failed load, empty otherwise
// an error exposing Message() contributes that instead of its full chain
func (l Load) Reason() string {
	if l.Status != StatusFailed {
		return ""
	}
	if l.Err == nil {
		return "An unknown error occurred"
	}
	var m messager
	if errors.As(l.Err, &m) && m.Message() != "" {
		return m.Message()
	}
	return l.Err.Error()
}

// Elapsed is the time between start and settle, 0 while pending
func (l Load) Elapsed() time.Duration {
	if l.Status == StatusPending {
		return 0
	}
	return l.FinishedAt.Sub(l.StartedAt)
}
