package services

import (
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// insights may be nil, in which case AI commentary reports itself unavailable.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, insights portssvc.InsightGenerator, options ...ServiceOption) *portssvc.ServiceContainer {
	reportingOptions := []ReportingServiceOption{WithReportingBase(options...)}
	if insights != nil {
		reportingOptions = append(reportingOptions, WithInsightGenerator(insights))
	}

	return &portssvc.ServiceContainer{
		Member:       NewMemberService(repos.State, options...),
		Contribution: NewContributionService(repos.State, options...),
		Loan:         NewLoanService(repos.State, options...),
		Activity:     NewActivityService(repos.State, options...),
		Investment:   NewInvestmentService(repos.State, options...),
		Settings:     NewSettingsService(repos.State, options...),
		Notification: NewNotificationService(repos.State, options...),
		Reporting:    NewReportingService(repos.State, reportingOptions...),
		Backup:       NewBackupService(repos.State, repos.Snapshot, options...),
		Auth:         NewAuthService(cfg, repos.State, options...),
	}
}
