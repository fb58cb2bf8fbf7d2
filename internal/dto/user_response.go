package dto

import "github.com/SscSPs/contracts_tracker/internal/core/domain"

// UserResponse describes the authenticated user and what they may do outside any
// particular contract.
type UserResponse struct {
	UserID       int64               `json:"userID"`
	Username     string              `json:"username"`
	Role         domain.Role         `json:"role"`
	IsAdmin      bool                `json:"isAdmin"`
	AuthMethod   string              `json:"authMethod,omitempty"`
	Capabilities []domain.Capability `json:"capabilities"`
}

// ToUserResponse converts a domain.User and its resolved capabilities to UserResponse.
func ToUserResponse(user *domain.User, caps domain.CapabilitySet, authMethod string) UserResponse {
	return UserResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		IsAdmin:      user.IsSystemAdmin(),
		AuthMethod:   authMethod,
		Capabilities: caps.List(),
	}
}
