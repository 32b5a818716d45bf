package dto

import (
	"time"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// ActivityLogResponse is one entry of the audit trail.
type ActivityLogResponse struct {
	LogID     string              `json:"logID"`
	Timestamp time.Time           `json:"timestamp"`
	Username  string              `json:"username"`
	Action    string              `json:"action"`
	Details   string              `json:"details"`
	Type      domain.ActivityType `json:"type"`
}

// ListActivityResponse wraps the audit trail, most recent first.
type ListActivityResponse struct {
	Logs []ActivityLogResponse `json:"logs"`
}

// ToListActivityResponse converts domain log entries into the response DTO.
func ToListActivityResponse(logs []domain.ActivityLog) ListActivityResponse {
	out := make([]ActivityLogResponse, len(logs))
	for i, entry := range logs {
		out[i] = ActivityLogResponse{
			LogID:     entry.LogID,
			Timestamp: entry.Timestamp,
			Username:  entry.Username,
			Action:    entry.Action,
			Details:   entry.Details,
			Type:      entry.Type,
		}
	}
	return ListActivityResponse{Logs: out}
}
