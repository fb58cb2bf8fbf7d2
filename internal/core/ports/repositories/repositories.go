package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A nil ExportHistoryRepo means export history is not stored.
type RepositoryProvider struct {
	ContractsRepo     ContractsRepositoryFacade
	ExportHistoryRepo ExportHistoryRepositoryFacade
}
