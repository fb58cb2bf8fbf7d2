package services

import (
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/platform/config"
)

// Integrations holds the optional outbound collaborators of the services.
// Nil fields disable the matching feature.
type Integrations struct {
	Publisher portssvc.SheetsPublisher
	Tracker   portssvc.EventTracker
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, integrations Integrations) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.ContractsRepo, cfg.JWTSecret, cfg.JWTIssuer)
	container.Permission = NewPermissionService()
	container.Table = NewTableService(repos.ContractsRepo)
	container.Plan = NewPlanService(repos.ContractsRepo)

	exportOptions := []ExportServiceOption{}
	if repos.ExportHistoryRepo != nil {
		exportOptions = append(exportOptions, WithExportHistory(repos.ExportHistoryRepo))
	}
	if integrations.Publisher != nil {
		exportOptions = append(exportOptions, WithSheetsPublisher(integrations.Publisher))
	}
	if integrations.Tracker != nil {
		exportOptions = append(exportOptions, WithEventTracker(integrations.Tracker))
	}
	container.Export = NewExportService(repos.ContractsRepo, exportOptions...)

	return container
}
