package services

// ServiceContainer bundles every service facade so route registration takes
// a single argument.
type ServiceContainer struct {
	UserSvc          UserSvcFacade
	AuthSvc          AuthSvcFacade
	SaleSvc          SaleSvcFacade
	InsuranceTypeSvc InsuranceTypeSvcFacade
	ObjectiveSvc     ObjectiveSvcFacade
	ReportingSvc     ReportingSvcFacade
	ExportSvc        ExportSvcFacade
}
