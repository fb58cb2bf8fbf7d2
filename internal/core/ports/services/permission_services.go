package services

import "github.com/SscSPs/contracts_tracker/internal/core/domain"

// PermissionSvcFacade resolves role capabilities.
type PermissionSvcFacade interface {
	// ResolvePermissions returns what user may do, globally when contract is nil or
	// with respect to contract otherwise. A nil user has no capabilities.
	ResolvePermissions(user *domain.User, contract *domain.ContractRef) domain.CapabilitySet

	// ResolveMany resolves the capabilities of user for each contract, in order.
	ResolveMany(user *domain.User, contracts []domain.ContractRef) []domain.CapabilitySet
}
