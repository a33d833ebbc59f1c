package dto

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// ResolveUserRequest identifies the household member performing a mutation.
type ResolveUserRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	UserID string  `json:"userID"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Image  *string `json:"image,omitempty"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Image:  user.Image,
	}
}
