package domain

import "time"

// UserRole determines what a user may see and which workflow actions they may take.
type UserRole string

const (
	RoleAdmin            UserRole = "ADMIN"
	RoleManager          UserRole = "MANAGER"
	RoleBillingExecutive UserRole = "BILLING_EXECUTIVE" // Reserved; no workflow rule references it yet.
	RoleEmployee         UserRole = "EMPLOYEE"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleBillingExecutive, RoleEmployee:
		return true
	}
	return false
}

// IsGlobalViewer reports whether the role sees every transaction, not just its own.
func (r UserRole) IsGlobalViewer() bool {
	return r == RoleAdmin || r == RoleManager
}

// User represents an account holder of the application.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"` // Unique
	PasswordHash string     `json:"passwordHash"`
	Role         UserRole   `json:"role"`
	ProfilePic   string     `json:"profilePic,omitempty"` // Base64 image
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// Viewer is the session context passed alongside state to workflow and
// reporting calls. It is resolved from the authenticated user on every
// request; nothing else carries session identity.
type Viewer struct {
	UserID   string
	Username string
	Role     UserRole
}
