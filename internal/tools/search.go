package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultSerpAPIURL = "https://serpapi.com/search.json"

// SearchClient handles communication with the SerpAPI Google search endpoint.
type SearchClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewSearchClient creates a new SerpAPI client.
func NewSearchClient(apiKey string, timeout time.Duration) *SearchClient {
	return &SearchClient{
		BaseURL: defaultSerpAPIURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchResult is a single organic result entry.
type SearchResult struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Search performs a Google search for the query string and returns the organic
// results in provider order. A response without an organic_results key yields
// an empty slice, not an error. The query is passed through unvalidated.
func (c *SearchClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("engine", "google")
	q.Set("q", query)
	q.Set("api_key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("SerpAPI returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		OrganicResults []SearchResult `json:"organic_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	results := payload.OrganicResults
	if results == nil {
		results = []SearchResult{}
	}
	return results, nil
}
