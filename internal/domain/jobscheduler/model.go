package jobscheduler

import "time"

type DispatchStatus string

const (
	StatusSent      DispatchStatus = "sent"
	StatusCompleted DispatchStatus = "completed"
	StatusFailed    DispatchStatus = "failed"
)

// DispatchEvent records one queued refresh job. DispatchID doubles as the
// dedup key so a timeslot's sweep enqueues each league at most once.
type DispatchEvent struct {
	DispatchID   string
	JobName      string
	JobPath      string
	LeagueKey    string
	Status       DispatchStatus
	Payload      map[string]any
	ErrorMessage string
	OccurredAt   time.Time
	TraceID      string
	SpanID       string
}
