package services

// ServiceContainer holds instances of all the application services.
// It is the entry point for handlers and the CLI.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Permission PermissionSvcFacade
	Table      TableSvcFacade
	Plan       PlanSvcFacade
	Export     ExportSvcFacade
}
