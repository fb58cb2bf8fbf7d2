package domain

import (
	"encoding/json"
	"sort"
)

// Capability names one action a user may take in the UI.
type Capability string

const (
	CapCreateContract         Capability = "create_contract"
	CapManageUsers            Capability = "manage_users"
	CapExport                 Capability = "export"
	CapEditContract           Capability = "edit_contract"
	CapEditPaid               Capability = "edit_paid"
	CapEditPaymentLoesk       Capability = "edit_payment_loesk"
	CapEditContractorPayments Capability = "edit_contractor_payments"
	CapEditClosedWorks        Capability = "edit_closed_works"
)

// CapabilitySet is the resolved set of capabilities for one render.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = true
	}
	return s
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// Add inserts c into the set.
func (s CapabilitySet) Add(c Capability) {
	s[c] = true
}

// List returns the capabilities in lexical order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c, ok := range s {
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes the array written by MarshalJSON.
func (s *CapabilitySet) UnmarshalJSON(data []byte) error {
	var caps []Capability
	if err := json.Unmarshal(data, &caps); err != nil {
		return err
	}
	*s = NewCapabilitySet(caps...)
	return nil
}
