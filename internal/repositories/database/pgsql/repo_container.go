package pgsql

import (
	portsrepo "github.com/SscSPs/contracts_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories next to the contracts API
// gateway. A nil pool leaves export history disabled.
func NewRepositoryProvider(dbPool *pgxpool.Pool, contracts portsrepo.ContractsRepositoryFacade) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{ContractsRepo: contracts}
	if dbPool != nil {
		provider.ExportHistoryRepo = newPgxExportHistoryRepository(dbPool)
	}
	return provider
}
