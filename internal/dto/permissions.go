package dto

import "github.com/SscSPs/contracts_tracker/internal/core/domain"

// ContractPermissionsRequest lists the contracts a page is about to render.
type ContractPermissionsRequest struct {
	Contracts []domain.ContractRef `json:"contracts" binding:"required,min=1,max=500,dive"`
}

// ContractPermissions are the capabilities resolved for one contract.
type ContractPermissions struct {
	ID           int64               `json:"id"`
	Kind         domain.ContractKind `json:"kind"`
	Capabilities []domain.Capability `json:"capabilities"`
}

// ContractPermissionsResponse answers ContractPermissionsRequest in request order.
type ContractPermissionsResponse struct {
	Contracts []ContractPermissions `json:"contracts"`
}

// ToContractPermissionsResponse pairs every contract with its capability set.
func ToContractPermissionsResponse(refs []domain.ContractRef, sets []domain.CapabilitySet) ContractPermissionsResponse {
	out := make([]ContractPermissions, len(refs))
	for i, ref := range refs {
		out[i] = ContractPermissions{ID: ref.ID, Kind: ref.Kind, Capabilities: sets[i].List()}
	}
	return ContractPermissionsResponse{Contracts: out}
}
