package services_test

import (
	"testing"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestResolvePermissions_UserLevel(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		want []domain.Capability
	}{
		{name: "anonymous", user: nil, want: []domain.Capability{}},
		{name: "economics", user: economist, want: []domain.Capability{domain.CapCreateContract, domain.CapExport}},
		{name: "pts", user: ptsUser, want: []domain.Capability{domain.CapCreateContract, domain.CapExport}},
		{name: "capital construction", user: &domain.User{Role: domain.RoleCapitalConstruction}, want: []domain.Capability{domain.CapCreateContract, domain.CapExport}},
		{name: "mes", user: mesUser, want: []domain.Capability{domain.CapExport}},
		{name: "admin role", user: &domain.User{Username: "boss", Role: domain.RoleSystemAdministrator}, want: []domain.Capability{domain.CapCreateContract, domain.CapExport, domain.CapManageUsers}},
		{name: "admin login without role", user: &domain.User{Username: "admin"}, want: []domain.Capability{domain.CapCreateContract, domain.CapExport, domain.CapManageUsers}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ResolvePermissions(tt.user, nil)
			assert.Equal(t, tt.want, got.List())
		})
	}
}

func TestResolvePermissions_IncomeContract(t *testing.T) {
	ref := &domain.ContractRef{ID: 1, Kind: domain.ContractIncome, Client: "ЛОЭСК"}

	caps := services.ResolvePermissions(economist, ref)
	assert.True(t, caps.Has(domain.CapEditContract))
	assert.True(t, caps.Has(domain.CapEditPaid))
	assert.False(t, caps.Has(domain.CapEditPaymentLoesk))

	caps = services.ResolvePermissions(ptsUser, ref)
	assert.False(t, caps.Has(domain.CapEditContract))
	assert.False(t, caps.Has(domain.CapEditPaid))

	// The system administrator role edits like the admin username does.
	for _, u := range []*domain.User{
		{Username: "boss", Role: domain.RoleSystemAdministrator},
		{Username: "admin", Role: domain.RolePTS},
	} {
		caps = services.ResolvePermissions(u, ref)
		assert.True(t, caps.Has(domain.CapEditContract), u.Username)
		assert.True(t, caps.Has(domain.CapEditPaid), u.Username)
	}
}

func TestResolvePermissions_ContractorPayments(t *testing.T) {
	mesContract := &domain.ContractRef{Kind: domain.ContractExpense, Client: domain.MESClient}
	flaggedContract := &domain.ContractRef{Kind: domain.ContractExpense, Client: "ООО Ромашка", IsMES: true}
	otherContract := &domain.ContractRef{Kind: domain.ContractExpense, Client: "ООО Ромашка"}

	assert.True(t, services.ResolvePermissions(mesUser, mesContract).Has(domain.CapEditContractorPayments))
	assert.True(t, services.ResolvePermissions(mesUser, flaggedContract).Has(domain.CapEditContractorPayments))
	assert.False(t, services.ResolvePermissions(mesUser, otherContract).Has(domain.CapEditContractorPayments))
	assert.True(t, services.ResolvePermissions(economist, otherContract).Has(domain.CapEditContractorPayments))
	assert.False(t, services.ResolvePermissions(ptsUser, mesContract).Has(domain.CapEditContractorPayments))

	// MES users never edit the contract itself or the ЛОЭСК payment.
	caps := services.ResolvePermissions(mesUser, mesContract)
	assert.False(t, caps.Has(domain.CapEditContract))
	assert.False(t, caps.Has(domain.CapEditPaymentLoesk))
}

func TestResolvePermissions_ClosedWorks(t *testing.T) {
	investment := &domain.ContractRef{Kind: domain.ContractExpense, TypeContract: domain.TypeInvestmentProgram}
	repair := &domain.ContractRef{Kind: domain.ContractExpense, TypeContract: domain.TypeRepairProgram}
	capital := &domain.User{Role: domain.RoleCapitalConstruction}
	admin := &domain.User{Username: "admin"}

	assert.True(t, services.ResolvePermissions(capital, investment).Has(domain.CapEditClosedWorks))
	assert.False(t, services.ResolvePermissions(capital, repair).Has(domain.CapEditClosedWorks))
	assert.True(t, services.ResolvePermissions(ptsUser, repair).Has(domain.CapEditClosedWorks))
	assert.False(t, services.ResolvePermissions(ptsUser, investment).Has(domain.CapEditClosedWorks))
	assert.True(t, services.ResolvePermissions(admin, investment).Has(domain.CapEditClosedWorks))
	assert.True(t, services.ResolvePermissions(admin, repair).Has(domain.CapEditClosedWorks))
	assert.False(t, services.ResolvePermissions(economist, repair).Has(domain.CapEditClosedWorks))
}

func TestPermissionService_ResolveMany(t *testing.T) {
	svc := services.NewPermissionService()
	refs := []domain.ContractRef{
		{Kind: domain.ContractIncome},
		{Kind: domain.ContractExpense, TypeContract: domain.TypeRepairProgram},
	}

	got := svc.ResolveMany(ptsUser, refs)
	assert.Len(t, got, 2)
	assert.False(t, got[0].Has(domain.CapEditClosedWorks))
	assert.True(t, got[1].Has(domain.CapEditClosedWorks))
	assert.Equal(t, services.ResolvePermissions(ptsUser, &refs[1]), svc.ResolvePermissions(ptsUser, &refs[1]))
	assert.Empty(t, svc.ResolveMany(economist, nil))
}
