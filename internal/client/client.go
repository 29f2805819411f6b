// Package client talks to the bug store API. It is the only thing the view
// layer knows about the backend: errors come back either as ErrNotFound or
// as a plain error carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	model "bug-tracker.com/bug-tracker/pkg/models"
)

var ErrNotFound = errors.New("bug not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type CreateBugInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

type UpdateBugInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type listResponse struct {
	Count int         `json:"count"`
	Bugs  []model.Bug `json:"bugs"`
}

func (c *Client) List(ctx context.Context) ([]model.Bug, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/bugs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bugs, nil
}

func (c *Client) Get(ctx context.Context, id string) (*model.Bug, error) {
	var bug model.Bug
	if err := c.do(ctx, http.MethodGet, "/bugs/"+id, nil, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

func (c *Client) Create(ctx context.Context, input CreateBugInput) (*model.Bug, error) {
	var bug model.Bug
	if err := c.do(ctx, http.MethodPost, "/bugs", input, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

func (c *Client) Update(ctx context.Context, id string, input UpdateBugInput) (*model.Bug, error) {
	var bug model.Bug
	if err := c.do(ctx, http.MethodPatch, "/bugs/"+id, input, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bugs/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(serverMessage(resp))
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func serverMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}
