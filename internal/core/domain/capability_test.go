package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilitySet_JSONRoundTrip(t *testing.T) {
	in := domain.NewCapabilitySet(domain.CapExport, domain.CapCreateContract)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["create_contract", "export"]`, string(data))

	var out domain.CapabilitySet
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCapabilitySet_UnmarshalInsideView(t *testing.T) {
	var view domain.TableView
	require.NoError(t, json.Unmarshal([]byte(`{"kind": "income", "capabilities": ["export"], "rows": []}`), &view))
	assert.True(t, view.Capabilities.Has(domain.CapExport))
	assert.False(t, view.Capabilities.Has(domain.CapManageUsers))

	var empty domain.CapabilitySet
	require.NoError(t, json.Unmarshal([]byte(`[]`), &empty))
	assert.Empty(t, empty.List())

	assert.Error(t, json.Unmarshal([]byte(`{"export": true}`), &empty))
}
