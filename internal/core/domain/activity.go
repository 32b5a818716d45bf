package domain

import "time"

// ActivityType classifies an activity log entry for filtering and display.
type ActivityType string

const (
	ActivityAuth        ActivityType = "auth"
	ActivityTransaction ActivityType = "transaction"
	ActivityUser        ActivityType = "user"
	ActivitySystem      ActivityType = "system"
)

// MaxActivityLogEntries bounds the retained audit trail; the oldest entries
// are dropped first.
const MaxActivityLogEntries = 1000

// ActivityLog is one immutable audit entry. Entries are stored and served
// most-recent-first.
type ActivityLog struct {
	LogID     string       `json:"logID"`
	Timestamp time.Time    `json:"timestamp"`
	Username  string       `json:"username"`
	Action    string       `json:"action"`
	Details   string       `json:"details"`
	Type      ActivityType `json:"type"`
}
