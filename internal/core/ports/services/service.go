package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for accessing service functionality, particularly in the handlers.
type ServiceContainer struct {
	Member       MemberSvcFacade
	Contribution ContributionSvcFacade
	Loan         LoanSvcFacade
	Activity     ActivitySvcFacade
	Investment   InvestmentSvcFacade
	Settings     SettingsSvcFacade
	Notification NotificationSvcFacade
	Reporting    ReportingService
	Backup       BackupSvcFacade
	Auth         AuthSvcFacade
}
