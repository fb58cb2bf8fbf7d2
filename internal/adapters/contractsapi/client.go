// Package contractsapi is the HTTP gateway to the contracts backend, which owns
// every contract, payment and plan record.
package contractsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/apperrors"
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// ServiceKeyHeader carries the optional shared key that identifies this server to the backend.
const ServiceKeyHeader = "X-Service-Key"

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// Client calls the contracts API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	serviceKey string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithServiceKey sends key in the ServiceKeyHeader of every request.
func WithServiceKey(key string) Option {
	return func(c *Client) {
		c.serviceKey = key
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid contracts api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid contracts api url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IncomeContracts lists the income contracts table.
func (c *Client) IncomeContracts(ctx context.Context) ([]domain.IncomeRow, error) {
	var rows []domain.IncomeRow
	if err := c.get(ctx, "/api/income", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PlanningContracts lists the financing planning table.
func (c *Client) PlanningContracts(ctx context.Context) ([]domain.PlanningRow, error) {
	var rows []domain.PlanningRow
	if err := c.get(ctx, "/api/planning", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ActualContracts lists the actual financing table.
func (c *Client) ActualContracts(ctx context.Context) ([]domain.ActualRow, error) {
	var rows []domain.ActualRow
	if err := c.get(ctx, "/api/actual", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Balance returns the balance of every income contract against its expense contracts.
func (c *Client) Balance(ctx context.Context) (*domain.BalanceResponse, error) {
	var resp domain.BalanceResponse
	if err := c.get(ctx, "/api/balance", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser returns the user of the forwarded session. The backend answers
// null for anonymous sessions, which is reported as ErrUnauthorized.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user *domain.User
	if err := c.get(ctx, "/api/auth/current", &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// ExpenseContract returns one expense contract.
func (c *Client) ExpenseContract(ctx context.Context, id int64) (*domain.ExpenseContract, error) {
	var contract domain.ExpenseContract
	if err := c.get(ctx, "/api/expense-contracts/"+strconv.FormatInt(id, 10), &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// CalPlan returns the disbursement plan of one expense contract.
func (c *Client) CalPlan(ctx context.Context, id int64) ([]domain.CalPlanEntry, error) {
	var entries []domain.CalPlanEntry
	if err := c.get(ctx, "/api/expense-contracts/"+strconv.FormatInt(id, 10)+"/cal-plan", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Ping checks that the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var body map[string]any
	return c.get(ctx, "/api/health", &body)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if cookie := SessionCookieFrom(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	if c.serviceKey != "" {
		req.Header.Set(ServiceKeyHeader, c.serviceKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrUpstream, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: invalid response body: %v", apperrors.ErrUpstream, path, err)
	}
	return nil
}

// statusError maps a non-2xx response onto the application error sentinels.
func statusError(path string, resp *http.Response) error {
	msg := errorMessage(resp.Body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = apperrors.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = apperrors.ErrForbidden
	case http.StatusNotFound:
		sentinel = apperrors.ErrNotFound
	default:
		sentinel = apperrors.ErrUpstream
	}
	return &StatusError{StatusCode: resp.StatusCode, Path: path, Message: msg, sentinel: sentinel}
}

func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	StatusCode int
	Path       string
	Message    string
	sentinel   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contracts api GET %s returned %d: %s", e.Path, e.StatusCode, e.Message)
}

// Is matches the sentinel the status maps to.
func (e *StatusError) Is(target error) bool {
	return errors.Is(e.sentinel, target)
}
