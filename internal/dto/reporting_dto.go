package dto

import "github.com/sangwaemm/The-Partners-App/internal/core/domain"

// QuarterListResponse lists the quarters a report can be generated for.
type QuarterListResponse struct {
	Quarters []domain.Quarter `json:"quarters"`
}

// ExportRowsResponse is the flat ledger export handed to renderers.
type ExportRowsResponse struct {
	Rows []domain.ExportRow `json:"rows"`
}

// InsightResponse is the advisory AI commentary on the current finances.
// Available is false when the generator could not produce text; Commentary then explains why.
type InsightResponse struct {
	Summary    domain.FinancialSummary `json:"summary"`
	Commentary string                  `json:"commentary"`
	Available  bool                    `json:"available"`
}
