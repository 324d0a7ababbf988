package dto

import "github.com/sangwaemm/The-Partners-App/internal/core/domain"

// ImportSnapshotRequest is a snapshot document where every collection is optional.
// Collections left out of the document keep their current contents.
type ImportSnapshotRequest struct {
	Members       *[]domain.Member       `json:"members"`
	Contributions *[]domain.Contribution `json:"contributions"`
	Loans         *[]domain.Loan         `json:"loans"`
	Investments   *[]domain.Investment   `json:"investments"`
	Activities    *[]domain.Activity     `json:"activities"`
	Settings      *domain.Settings       `json:"settings"`
	Notifications *[]domain.Notification `json:"notifications"`
}

// ImportFromSnapshot builds a request that replaces every collection.
func ImportFromSnapshot(s domain.Snapshot) ImportSnapshotRequest {
	return ImportSnapshotRequest{
		Members:       &s.Members,
		Contributions: &s.Contributions,
		Loans:         &s.Loans,
		Investments:   &s.Investments,
		Activities:    &s.Activities,
		Settings:      &s.Settings,
		Notifications: &s.Notifications,
	}
}

// BackupStatusResponse reports the outcome of an explicit backup save.
type BackupStatusResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}
