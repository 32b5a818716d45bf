package dto

import "time"

// SyncResponse reports the outcome of a push to the configured sheet webhook.
type SyncResponse struct {
	LastSynced time.Time `json:"lastSynced"`
}

// ExportResponse reports how many rows were written to the spreadsheet.
type ExportResponse struct {
	RowsWritten int `json:"rowsWritten"`
}
