package dto

import (
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// UpdateUsernameRequest changes the caller's username.
type UpdateUsernameRequest struct {
	NewUsername string `json:"new_username" binding:"omitempty,username"`
}

// UpdateUsernameResponse echoes the stored username.
type UpdateUsernameResponse struct {
	NewUsername string `json:"new_username"`
}

// RecoverAccountRequest re-proves the password of a soft-deleted account.
type RecoverAccountRequest struct {
	OldPassword string `json:"old_password"`
}

// RegisterResponse describes the account created by sign up.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse is the public profile of the authenticated user.
type UserResponse struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func ToRegisterResponse(user *domain.User) RegisterResponse {
	return RegisterResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		DeletedAt: user.DeletedAt,
	}
}
