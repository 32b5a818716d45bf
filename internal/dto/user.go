package dto

import (
	"time"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// CreateUserRequest defines the data required to register a new user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Password string          `json:"password" binding:"required,min=4"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Username   *string          `json:"username" binding:"omitempty,min=3,max=50"`
	Password   *string          `json:"password" binding:"omitempty,min=4"`
	Role       *domain.UserRole `json:"role"`
	ProfilePic *string          `json:"profilePic"`
}

// UserResponse is the public representation of a user; the password hash
// never leaves the service layer.
type UserResponse struct {
	UserID     string          `json:"userID"`
	Username   string          `json:"username"`
	Role       domain.UserRole `json:"role"`
	ProfilePic string          `json:"profilePic,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Role:       user.Role,
		ProfilePic: user.ProfilePic,
		CreatedAt:  user.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
