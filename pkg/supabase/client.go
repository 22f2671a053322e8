// Package supabase inserts projects through the Supabase REST (PostgREST)
// endpoint using the service role key.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ashram-bot/internal/entity"
	"ashram-bot/internal/mapper"
	"ashram-bot/internal/repository/contract"
)

// Error is the body PostgREST returns for a rejected request.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("supabase: status %d", e.Status)
}

type Client struct {
	BaseURL    string
	ServiceKey string
	Table      string
	HTTPClient *http.Client
	mapper     *mapper.ProjectMapper
}

var _ contract.ProjectRepository = (*Client)(nil)

func NewClient(baseURL, serviceKey, table string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Table:      table,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		mapper: mapper.NewProjectMapper(),
	}
}

// Create inserts one row and reads back the stored representation.
func (c *Client) Create(ctx context.Context, project *entity.Project) error {
	body, err := json.Marshal(c.mapper.ToModel(project))
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	url := fmt.Sprintf("%s/rest/v1/%s", c.BaseURL, c.Table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(respBody, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return apiErr
	}

	// The row is committed at this point. What comes back only fills in
	// generated columns, so a body we cannot read is not an insert failure.
	readBack(respBody, project)
	return nil
}

// timestampLayouts covers timestamptz and timestamp columns as PostgREST
// renders them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func readBack(body []byte, project *entity.Project) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) != 1 {
		return
	}
	row := rows[0]

	var id int64
	if err := json.Unmarshal(row["id"], &id); err == nil {
		project.Id = id
	}

	var createdAt string
	if err := json.Unmarshal(row["created_at"], &createdAt); err == nil {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, createdAt); err == nil {
				project.CreatedAt = t
				break
			}
		}
	}
}
