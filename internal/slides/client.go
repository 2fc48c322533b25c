// Package slides talks to the hosted slide-authoring service. It turns an
// enhanced deck into presentation API calls; all content decisions happen
// upstream.
package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deckgen/deckgen/internal/deck"
)

// Client communicates with the slide-service HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Presentation identifies a created presentation.
type Presentation struct {
	ID       string `json:"presentationId"`
	Title    string `json:"title"`
	EditLink string `json:"editLink"`
}

// Result summarizes a completed publish.
type Result struct {
	PresentationID string `json:"presentation_id"`
	Title          string `json:"title"`
	SlideCount     int    `json:"slide_count"`
	EditLink       string `json:"edit_link"`
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// CreatePresentation creates an empty presentation with the given title.
func (c *Client) CreatePresentation(ctx context.Context, title string) (*Presentation, error) {
	body, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return nil, fmt.Errorf("marshal presentation: %w", err)
	}
	respBody, err := c.post(ctx, c.baseURL+"/v1/presentations", body)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	var p Presentation
	if err := json.Unmarshal(respBody, &p); err != nil {
		return nil, fmt.Errorf("decode presentation: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("create presentation: response missing id")
	}
	return &p, nil
}

// BatchUpdate applies a request list to an existing presentation.
func (c *Client) BatchUpdate(ctx context.Context, presentationID string, reqs []Request) error {
	body, err := json.Marshal(map[string]any{"requests": reqs})
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}
	if _, err := c.post(ctx, c.baseURL+"/v1/presentations/"+presentationID+":batchUpdate", body); err != nil {
		return fmt.Errorf("batch update %s: %w", presentationID, err)
	}
	return nil
}

// Publish creates a presentation and fills it with the deck in one batch.
func (c *Client) Publish(ctx context.Context, title string, slides []deck.EnhancedSlide) (*Result, error) {
	p, err := c.CreatePresentation(ctx, title)
	if err != nil {
		return nil, err
	}
	if err := c.BatchUpdate(ctx, p.ID, BuildRequests(slides)); err != nil {
		return nil, err
	}
	return &Result{
		PresentationID: p.ID,
		Title:          title,
		SlideCount:     len(slides),
		EditLink:       p.EditLink,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}
	return respBody, nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
