package dto

import (
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// LoginRequest selects a member (by id or email) and the role to act as.
type LoginRequest struct {
	MemberID string            `json:"memberId" binding:"required_without=Email"`
	Email    string            `json:"email" binding:"omitempty,email"`
	Role     domain.MemberRole `json:"role" binding:"required,oneof=ADMIN PRESIDENT SECRETARY MEMBER"`
	Passcode string            `json:"passcode"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Member    domain.Member `json:"member"`
}
