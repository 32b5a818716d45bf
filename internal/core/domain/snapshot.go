package domain

import "time"

// AppState is the root aggregate: everything the application knows, persisted
// as a single JSON snapshot. The state store owns the only live copy; every
// other component reads it or requests mutations through the store.
type AppState struct {
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	Users        []User        `json:"users"`
	ActivityLogs []ActivityLog `json:"activityLogs"`
	CompanyName  string        `json:"companyName,omitempty"`
	CompanyLogo  string        `json:"companyLogo,omitempty"` // Base64 image
	SheetURL     string        `json:"sheetUrl,omitempty"`    // Apps Script web app URL
	LastSynced   *time.Time    `json:"lastSynced,omitempty"`
	DarkMode     bool          `json:"darkMode"`
}

// Settings is the mutable branding/configuration slice of AppState.
type Settings struct {
	CompanyName string     `json:"companyName,omitempty"`
	CompanyLogo string     `json:"companyLogo,omitempty"`
	SheetURL    string     `json:"sheetUrl,omitempty"`
	LastSynced  *time.Time `json:"lastSynced,omitempty"`
	DarkMode    bool       `json:"darkMode"`
}
