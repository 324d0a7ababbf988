package dto

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	FullName               string              `json:"fullName" binding:"required,max=120"`
	Email                  string              `json:"email" binding:"omitempty,email"`
	Phone                  string              `json:"phone" binding:"omitempty,max=32"`
	Role                   domain.MemberRole   `json:"role" binding:"required,oneof=ADMIN PRESIDENT SECRETARY MEMBER"`
	Status                 domain.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	JoinedDate             domain.Date         `json:"joinedDate"`             // defaults to today
	HistoricalContribution *decimal.Decimal    `json:"historicalContribution"` // defaults to 0
	HistoricalProfit       *decimal.Decimal    `json:"historicalProfit"`       // defaults to 0
}

// UpdateMemberRequest defines the fields that may be changed on a member.
// Pointers distinguish "not provided" from zero values.
type UpdateMemberRequest struct {
	FullName               *string              `json:"fullName" binding:"omitempty,min=1,max=120"`
	Email                  *string              `json:"email" binding:"omitempty,email"`
	Phone                  *string              `json:"phone" binding:"omitempty,max=32"`
	Role                   *domain.MemberRole   `json:"role" binding:"omitempty,oneof=ADMIN PRESIDENT SECRETARY MEMBER"`
	Status                 *domain.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	JoinedDate             *domain.Date         `json:"joinedDate"`
	HistoricalContribution *decimal.Decimal     `json:"historicalContribution"`
	HistoricalProfit       *decimal.Decimal     `json:"historicalProfit"`
}

// ListMembersResponse wraps the member list.
type ListMembersResponse struct {
	Members []domain.Member `json:"members"`
}

// MemberSharesResponse wraps the share table.
type MemberSharesResponse struct {
	Shares []domain.MemberShareSummary `json:"shares"`
}
