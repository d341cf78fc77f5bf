package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const maxPageBytes = 10 << 20

// Fetcher retrieves web pages and extracts text content from them.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// PagePreview is the title/host summary of a page.
type PagePreview struct {
	Title   string `json:"title"`
	URLHost string `json:"url_host"`
}

// NewFetcher creates a fetcher whose every request is bounded by the given
// timeout and capped at 10 redirects.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		userAgent: "tutorchat/1.0",
	}
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}

// ExtractText fetches a page and returns the text of every paragraph element,
// in document order, joined with single spaces. Pages whose paragraph pass
// yields nothing fall back to readability article extraction.
func (f *Fetcher) ExtractText(ctx context.Context, pageURL string) (string, error) {
	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	text := strings.Join(parts, " ")
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// No paragraph markup; let readability take a shot at the article body.
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return text, nil
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return text, nil
	}
	return article.TextContent, nil
}

// Preview fetches a page and returns its title and the URL's host component.
// A page without a title gets a fixed fallback.
func (f *Fetcher) Preview(ctx context.Context, pageURL string) (*PagePreview, error) {
	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "No title found"
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	return &PagePreview{Title: title, URLHost: parsed.Host}, nil
}
