// Package contactapi provides a typed HTTP client for the ContactDesk API.
// Uses raw HTTP calls against the JSON endpoints served by cmd/server.
package contactapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Contact is a contact record as returned over the API. Email and Message
// are empty strings when absent, never null.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateContactParams is the body of POST /api/contacts. Name and Phone are
// required; the server rejects blank values.
type CreateContactParams struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the API, carrying the status code and
// the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the contact API. BaseURL is prepended to every request
// path; an empty BaseURL produces same-origin relative URLs, which only work
// behind a proxy that supplies the host.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL.
// Requests carry no client-side timeout; cancellation is the caller's
// context's job.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// NewClientFromEnv creates a Client with the base URL taken from the
// CONTACT_API_BASE_URL environment variable.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("CONTACT_API_BASE_URL"))
}

// List fetches every contact, newest first.
func (c *Client) List(ctx context.Context) ([]*Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/contacts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var contacts []*Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// Create submits a new contact and returns the server's created record.
func (c *Client) Create(ctx context.Context, params CreateContactParams) (*Contact, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/contacts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var contact Contact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Delete removes the contact with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/api/contacts/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// apiError builds an APIError from a non-2xx response, decoding the
// {"error": "..."} body when present.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}
