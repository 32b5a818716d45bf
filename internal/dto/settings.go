package dto

import (
	"time"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// UpdateSettingsRequest defines the editable branding and configuration
// fields. Pointers distinguish omitted fields from explicit blanks.
type UpdateSettingsRequest struct {
	CompanyName *string `json:"companyName" binding:"omitempty,max=100"`
	CompanyLogo *string `json:"companyLogo"`
	SheetURL    *string `json:"sheetUrl" binding:"omitempty,url"`
	DarkMode    *bool   `json:"darkMode"`
}

// SettingsResponse is the public view of the branding configuration.
type SettingsResponse struct {
	CompanyName string     `json:"companyName"`
	CompanyLogo string     `json:"companyLogo,omitempty"`
	SheetURL    string     `json:"sheetUrl,omitempty"`
	LastSynced  *time.Time `json:"lastSynced,omitempty"`
	DarkMode    bool       `json:"darkMode"`
}

// ToSettingsResponse converts domain.Settings to its response DTO.
func ToSettingsResponse(settings domain.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName: settings.CompanyName,
		CompanyLogo: settings.CompanyLogo,
		SheetURL:    settings.SheetURL,
		LastSynced:  settings.LastSynced,
		DarkMode:    settings.DarkMode,
	}
}
