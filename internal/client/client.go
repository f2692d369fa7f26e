// Package client is the HTTP client of the droneflow presentation boundary.
//
// Every call takes a context for cancellation and deadlines. A rejected or
// blocked intent is returned as *APIError together with the snapshot the
// server sent back, so callers can still render the state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	httpin "droneflow/internal/adapters/in/http"
	"droneflow/internal/core/application/workflow"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string) *Client {
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
	}
}

// APIError is a non-2xx answer.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (c *Client) Workflow(ctx context.Context) (workflow.Snapshot, error) {
	var out workflow.Snapshot
	err := c.do(ctx, http.MethodGet, "/api/v1/workflow", nil, &out)
	return out, err
}

func (c *Client) Notifications(ctx context.Context) ([]workflow.Notification, error) {
	var out []workflow.Notification
	err := c.do(ctx, http.MethodGet, "/api/v1/notifications", nil, &out)
	return out, err
}

// Dispatch posts one intent. The snapshot is filled in for rejected intents too.
func (c *Client) Dispatch(ctx context.Context, req httpin.IntentRequest) (workflow.Snapshot, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return workflow.Snapshot{}, err
	}

	var out httpin.IntentResponse
	err = c.do(ctx, http.MethodPost, "/api/v1/workflow/intents", body, &out)
	if err != nil {
		return out.Snapshot, err
	}
	if out.Error != nil {
		return out.Snapshot, &APIError{Status: http.StatusOK, Code: out.Error.Code, Message: out.Error.Message}
	}
	return out.Snapshot, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		var res httpin.IntentResponse
		if json.Unmarshal(raw, &res) == nil && res.Error != nil {
			apiErr.Code, apiErr.Message = res.Error.Code, res.Error.Message
			if r, ok := out.(*httpin.IntentResponse); ok {
				r.Snapshot = res.Snapshot
			}
		} else {
			var plain httpin.Error
			if json.Unmarshal(raw, &plain) == nil {
				apiErr.Code, apiErr.Message = plain.Code, plain.Message
			}
		}
		return apiErr
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: malformed answer: %w", method, path, err)
	}
	return nil
}
