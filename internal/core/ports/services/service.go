package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and shared by the HTTP handlers and the admin CLI.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	Entry    EntrySvcFacade
	Budget   BudgetSvcFacade
	Contract ContractSvcFacade
	Task     TaskSvcFacade
}
