package api

import (
	"context"

	"tutorchat/internal/llm"
	"tutorchat/internal/tools"
)

// Completer produces a schema-constrained completion for a conversation.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (*llm.StructuredResult, error)
}

// Searcher runs a keyword query against the search provider.
type Searcher interface {
	Search(ctx context.Context, query string) ([]tools.SearchResult, error)
}

// Fetcher retrieves pages for scraping and preview.
type Fetcher interface {
	ExtractText(ctx context.Context, url string) (string, error)
	Preview(ctx context.Context, url string) (*tools.PagePreview, error)
}
