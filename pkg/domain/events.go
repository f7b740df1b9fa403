package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart    EventType = "solve_start"
	EventSolveComplete EventType = "solve_complete"
	EventCacheHit      EventType = "cache_hit"
)

// SolveEvent describes one solve attempt.
type SolveEvent struct {
	Timestamp   time.Time     `json:"timestamp"`
	Type        EventType     `json:"type"`
	Key         string        `json:"key"`
	Params      Params        `json:"params"`
	MemoEntries int           `json:"memo_entries,omitempty"`
	Elapsed     time.Duration `json:"elapsed,omitempty"`
	Err         error         `json:"-"`
}

// SolveHooks defines callbacks for solver observability.
type SolveHooks struct {
	OnSolveStart    func(context.Context, *SolveEvent)
	OnSolveComplete func(context.Context, *SolveEvent)
	OnCacheHit      func(context.Context, *SolveEvent)
}
