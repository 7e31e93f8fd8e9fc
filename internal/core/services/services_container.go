package services

import (
	portsrepo "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/repositories"
	portssvc "github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/ports/services"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, files ContractFileStore, opts ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:     NewAuthService(cfg, opts...),
		Entry:    NewEntryService(repos.EntryRepo, opts...),
		Budget:   NewBudgetService(repos.BudgetRepo, opts...),
		Contract: NewContractService(repos.ContractRepo, files, opts...),
		Task:     NewTaskService(repos.TaskRepo, opts...),
	}
}
