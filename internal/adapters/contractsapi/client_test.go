package contractsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/contracts_tracker/internal/adapters/contractsapi"
	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...contractsapi.Option) *contractsapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := contractsapi.NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := contractsapi.NewClient("ftp://example.com")
	assert.Error(t, err)
	_, err = contractsapi.NewClient("://nope")
	assert.Error(t, err)
}

func TestClient_IncomeContractsForwardsSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/income", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		assert.Equal(t, "secret", r.Header.Get(contractsapi.ServiceKeyHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "contract": "D-1", "date": "2025-01-10", "client": "ЛОЭСК", "amount": "1 234,50 ₽", "paid": "0 ₽"},
			{"id": 2, "contract": "D-2", "amount": null, "paid": 15}
		]`))
	}, contractsapi.WithServiceKey("secret"))

	ctx := contractsapi.WithSessionCookie(context.Background(), "session=abc")
	rows, err := client.IncomeContracts(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "D-1", rows[0].Contract)
	assert.True(t, decimal.RequireFromString("1234.50").Equal(rows[0].Amount.Value))
	assert.False(t, rows[1].Amount.Valid)
	assert.True(t, decimal.NewFromInt(15).Equal(rows[1].Paid.Value))
}

func TestClient_CurrentUser(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 3, "username": "ivanova", "role": "Экономика", "name": "ivanova"}`))
		})
		user, err := client.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEconomics, user.Role)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("anonymous session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})
		_, err := client.CurrentUser(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestClient_BalanceAndPlan(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/balance":
			_, _ = w.Write([]byte(`{"contracts": [{
				"income_contract": {"id": 1, "number": "I-1", "client": "A", "amount": "1000.00", "paid": "800.00"},
				"expense_contracts": [{"id": 5, "number": "E-1", "amount": "600.00", "paid": "900.00"}],
				"total_expense": "600.00", "total_paid": "900.00", "balance": "-100.00"
			}], "total_balance": "-100.00"}`))
		case "/api/expense-contracts/5":
			_, _ = w.Write([]byte(`{"id": 5, "contract_number": "E-1", "start_date": "2025-01-01", "end_date": "2025-06-30", "contract_amount": "600.00"}`))
		case "/api/expense-contracts/5/cal-plan":
			_, _ = w.Write([]byte(`[{"id": 1, "date": "2025-02-01", "plopl": "150.00"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	balance, err := client.Balance(ctx)
	require.NoError(t, err)
	require.Len(t, balance.Contracts, 1)
	assert.Equal(t, "E-1", balance.Contracts[0].Expenses[0].Number)

	contract, err := client.ExpenseContract(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "E-1", contract.ContractNumber)

	plan, err := client.CalPlan(ctx, 5)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.True(t, decimal.NewFromInt(150).Equal(plan[0].Amount.Value))

	_, err = client.CalPlan(ctx, 6)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: apperrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: apperrors.ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: apperrors.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, want: apperrors.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": "backend says no"}`))
			})

			_, err := client.ActualContracts(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var statusErr *contractsapi.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, "backend says no", statusErr.Message)
		})
	}
}

func TestClient_InvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	_, err := client.PlanningContracts(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestSessionCookie(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", contractsapi.SessionCookieFrom(ctx))
	assert.Equal(t, ctx, contractsapi.WithSessionCookie(ctx, ""))
	assert.Equal(t, "a=b", contractsapi.SessionCookieFrom(contractsapi.WithSessionCookie(ctx, "a=b")))
}
