package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bancoctl/internal/model"
)

// Client talks to the banking backend. All durable state lives
// server-side; the client carries only its configuration.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListPeople(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	if err := c.do(ctx, http.MethodGet, "/pessoas", nil, &people, "load the list of people"); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) ListPeopleWithAccounts(ctx context.Context) ([]model.PersonWithAccounts, error) {
	var people []model.PersonWithAccounts
	if err := c.do(ctx, http.MethodGet, "/pessoas/contas", nil, &people, "load the list of people and accounts"); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) ListPeopleRefs(ctx context.Context) ([]model.PersonRef, error) {
	var refs []model.PersonRef
	if err := c.do(ctx, http.MethodGet, "/pessoas/IdNomeCpf", nil, &refs, "load the list of people"); err != nil {
		return nil, err
	}
	return refs, nil
}

func (c *Client) CreatePerson(ctx context.Context, p model.Person) error {
	return c.do(ctx, http.MethodPost, "/pessoas/cadastro", p, nil, "register the person")
}

func (c *Client) UpdatePerson(ctx context.Context, p model.Person) error {
	path := fmt.Sprintf("/pessoas/%d", p.ID)
	return c.do(ctx, http.MethodPut, path, p, nil, "update the person")
}

func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/pessoas/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "remove the person")
}

func (c *Client) ListAccountsByPerson(ctx context.Context, personID int64) ([]model.Account, error) {
	var accounts []model.Account
	path := fmt.Sprintf("/contas/pessoas/%d", personID)
	if err := c.do(ctx, http.MethodGet, path, nil, &accounts, "load the person's accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

type accountPayload struct {
	Number string `json:"numeroConta"`
}

func (c *Client) CreateAccount(ctx context.Context, personID int64, number string) error {
	// The owning person rides in the query string, not the body.
	path := fmt.Sprintf("/contas/cadastro?pessoa_id=%d", personID)
	return c.do(ctx, http.MethodPost, path, accountPayload{Number: number}, nil, "register the account")
}

func (c *Client) UpdateAccount(ctx context.Context, accountID int64, number string) error {
	path := fmt.Sprintf("/contas/%d", accountID)
	return c.do(ctx, http.MethodPut, path, accountPayload{Number: number}, nil, "update the account")
}

func (c *Client) DeleteAccount(ctx context.Context, accountID int64) error {
	path := fmt.Sprintf("/contas/%d", accountID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "remove the account")
}

func (c *Client) ListMovements(ctx context.Context, accountID int64) ([]model.Movement, error) {
	var movements []model.Movement
	path := fmt.Sprintf("/movimentacoes/conta/%d", accountID)
	if err := c.do(ctx, http.MethodGet, path, nil, &movements, "load the account statement"); err != nil {
		return nil, err
	}
	return movements, nil
}

type movementPayload struct {
	Account struct {
		ID int64 `json:"id"`
	} `json:"conta"`
	Amount float64 `json:"valor"`
	Type   string  `json:"tipo"`
}

func (c *Client) CreateMovement(ctx context.Context, accountID int64, amount float64, movementType string) error {
	var payload movementPayload
	payload.Account.ID = accountID
	payload.Amount = amount
	payload.Type = movementType
	return c.do(ctx, http.MethodPost, "/movimentacoes/cadastro", payload, nil, "record the movement")
}

// do issues one request and decodes the response into out when out is
// non-nil. Every failure comes back as a *RemoteError labeled with the
// attempted action; the underlying cause goes to the debug log only.
func (c *Client) do(ctx context.Context, method, path string, body, out any, action string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Action: action, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RemoteError{Action: action, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("backend request failed", "action", action, "method", method, "path", path, "error", err)
		return &RemoteError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Action: action, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("backend rejected request",
			"action", action, "method", method, "path", path,
			"status", resp.StatusCode, "body", string(data))
		return &RemoteError{
			Action:  action,
			Status:  resp.StatusCode,
			Message: backendMessage(data),
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &RemoteError{Action: action, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// backendMessage pulls a human-readable message out of an error body.
func backendMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
