package dto

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordActivityRequest defines an ad-hoc income/expense event.
type RecordActivityRequest struct {
	Title        string              `json:"title" binding:"required,max=200"`
	Description  string              `json:"description"`
	AmountSpent  decimal.Decimal     `json:"amountSpent"`
	AmountEarned decimal.Decimal     `json:"amountEarned"`
	Date         domain.Date         `json:"date"` // defaults to today
	Category     string              `json:"category" binding:"omitempty,max=80"`
	ActivityType domain.ActivityType `json:"activityType" binding:"required,oneof=CONTRIBUTION GIVEN_LOAN PAYING_LOAN PAYING_PROFIT EXPENSE INVESTMENT GENERAL"`
	ActorID      string              `json:"actorId"`
	ActorName    string              `json:"actorName"`
}

// ListActivitiesResponse wraps the activity list.
type ListActivitiesResponse struct {
	Activities []domain.Activity `json:"activities"`
}
