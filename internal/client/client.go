package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
)

// Client is a typed HTTP client for the API, used by the CLI and the TUI.
type Client struct {
	baseURL    string
	companyID  string
	httpClient *http.Client
}

func New(baseURL, companyID string) *Client {
	return &Client{
		baseURL:   baseURL,
		companyID: companyID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) companyPath(suffix string) string {
	return "/api/v1/companies/" + url.PathEscape(c.companyID) + suffix
}

func (c *Client) AccountTypes(ctx context.Context) (*ledger.TypesCatalog, error) {
	var result ledger.TypesCatalog
	if err := c.get(ctx, "/api/v1/account-types", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateAccountParams mirrors the create request body.
type CreateAccountParams struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountType   string `json:"account_type"`
	DetailType    string `json:"detail_type"`
	Description   string `json:"description,omitempty"`
	ParentID      string `json:"parent_account_id,omitempty"`
}

func (c *Client) CreateAccount(ctx context.Context, p CreateAccountParams) (*ledger.Account, error) {
	var result ledger.Account
	if err := c.post(ctx, c.companyPath("/accounts"), p, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListAccounts(ctx context.Context, typeFilter string) ([]ledger.AccountSummary, error) {
	params := url.Values{}
	if typeFilter != "" {
		params.Set("type", typeFilter)
	}
	var result []ledger.AccountSummary
	if err := c.get(ctx, c.companyPath("/accounts?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) AccountTree(ctx context.Context, typeFilter string) (*ledger.ChartTree, error) {
	params := url.Values{}
	if typeFilter != "" {
		params.Set("type", typeFilter)
	}
	var result ledger.ChartTree
	if err := c.get(ctx, c.companyPath("/accounts/tree?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	var result ledger.Account
	if err := c.get(ctx, c.companyPath("/accounts/"+url.PathEscape(id)), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RenameAccount(ctx context.Context, id, newName string) (*ledger.Account, error) {
	body := map[string]any{"name": newName}
	var result ledger.Account
	if err := c.patch(ctx, c.companyPath("/accounts/"+url.PathEscape(id)), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.del(ctx, c.companyPath("/accounts/"+url.PathEscape(id)))
}

func (c *Client) SeedDefaults(ctx context.Context) ([]ledger.Account, error) {
	var result []ledger.Account
	if err := c.post(ctx, c.companyPath("/accounts/seed"), struct{}{}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// EntryLine is one line of a journal entry posted through the API.
type EntryLine struct {
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

func (c *Client) PostEntry(ctx context.Context, entryDate, description string, lines []EntryLine) (*ledger.JournalEntry, error) {
	body := map[string]any{
		"entry_date":  entryDate,
		"description": description,
		"lines":       lines,
	}
	var result ledger.JournalEntry
	if err := c.post(ctx, c.companyPath("/entries"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TrialBalance(ctx context.Context, asOf string) (*ledger.TrialBalance, error) {
	params := url.Values{}
	if asOf != "" {
		params.Set("as_of", asOf)
	}
	var result ledger.TrialBalance
	if err := c.get(ctx, c.companyPath("/reports/trial-balance?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) AccountLedger(ctx context.Context, accountID, startDate, endDate string) (*ledger.AccountLedger, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	if endDate != "" {
		params.Set("end_date", endDate)
	}
	var result ledger.AccountLedger
	if err := c.get(ctx, c.companyPath("/reports/ledger/"+url.PathEscape(accountID)+"?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) IncomeStatement(ctx context.Context, startDate, endDate string) (*ledger.IncomeStatement, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	if endDate != "" {
		params.Set("end_date", endDate)
	}
	var result ledger.IncomeStatement
	if err := c.get(ctx, c.companyPath("/reports/income-statement?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) BalanceSheet(ctx context.Context, asOf string) (*ledger.BalanceSheet, error) {
	params := url.Values{}
	if asOf != "" {
		params.Set("as_of", asOf)
	}
	var result ledger.BalanceSheet
	if err := c.get(ctx, c.companyPath("/reports/balance-sheet?"+params.Encode()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/account-types", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, nil)
}

func (c *Client) patch(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "PATCH", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	if result != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
