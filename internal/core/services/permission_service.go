package services

import (
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
)

// permissionService implements the PermissionSvcFacade interface
type permissionService struct{}

// NewPermissionService creates a new permission service
func NewPermissionService() portssvc.PermissionSvcFacade {
	return &permissionService{}
}

// Ensure permissionService implements the PermissionSvcFacade interface
var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

func (s *permissionService) ResolvePermissions(user *domain.User, contract *domain.ContractRef) domain.CapabilitySet {
	return ResolvePermissions(user, contract)
}

func (s *permissionService) ResolveMany(user *domain.User, contracts []domain.ContractRef) []domain.CapabilitySet {
	out := make([]domain.CapabilitySet, len(contracts))
	for i := range contracts {
		out[i] = ResolvePermissions(user, &contracts[i])
	}
	return out
}

// ResolvePermissions is the single place where roles turn into capabilities.
// With a nil contract only the user-level capabilities are returned.
func ResolvePermissions(user *domain.User, contract *domain.ContractRef) domain.CapabilitySet {
	caps := domain.NewCapabilitySet()
	if user == nil {
		return caps
	}

	admin := user.IsSystemAdmin()
	economics := user.HasRole(domain.RoleEconomics)

	caps.Add(domain.CapExport)
	if admin || user.HasRole(domain.RoleEconomics, domain.RolePTS, domain.RoleCapitalConstruction) {
		caps.Add(domain.CapCreateContract)
	}
	if admin {
		caps.Add(domain.CapManageUsers)
	}

	if contract == nil {
		return caps
	}

	if admin || economics {
		caps.Add(domain.CapEditContract)
	}

	switch contract.Kind {
	case domain.ContractIncome:
		if admin || economics {
			caps.Add(domain.CapEditPaid)
		}
	case domain.ContractExpense:
		if admin || economics {
			caps.Add(domain.CapEditPaymentLoesk)
		}
		if admin || economics || (user.HasRole(domain.RoleMES) && isMESContract(contract)) {
			caps.Add(domain.CapEditContractorPayments)
		}
		if canEditClosedWorks(user, contract) {
			caps.Add(domain.CapEditClosedWorks)
		}
	}
	return caps
}

func isMESContract(c *domain.ContractRef) bool {
	return c.IsMES || c.Client == domain.MESClient
}

func canEditClosedWorks(user *domain.User, c *domain.ContractRef) bool {
	switch {
	case user.IsSystemAdmin():
		return true
	case user.HasRole(domain.RoleCapitalConstruction):
		return c.TypeContract == domain.TypeInvestmentProgram
	case user.HasRole(domain.RolePTS):
		return c.TypeContract == domain.TypeRepairProgram
	}
	return false
}
