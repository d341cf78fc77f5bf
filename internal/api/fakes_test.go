package api

import (
	"context"
	"fmt"

	"tutorchat/internal/llm"
	"tutorchat/internal/tools"
)

type fakeCompleter struct {
	calls int
	convs [][]llm.Message
	fn    func(call int, messages []llm.Message) (*llm.StructuredResult, error)
}

func (f *fakeCompleter) Complete(_ context.Context, messages []llm.Message) (*llm.StructuredResult, error) {
	f.calls++
	f.convs = append(f.convs, append([]llm.Message(nil), messages...))
	return f.fn(f.calls, messages)
}

type fakeSearcher struct {
	calls   int
	queries []string
	results []tools.SearchResult
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]tools.SearchResult, error) {
	f.calls++
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeFetcher struct {
	extracted []string
	texts     map[string]string
	failing   map[string]error
	previews  map[string]*tools.PagePreview
	previewed int
}

func (f *fakeFetcher) ExtractText(_ context.Context, url string) (string, error) {
	f.extracted = append(f.extracted, url)
	if err, ok := f.failing[url]; ok {
		return "", err
	}
	if text, ok := f.texts[url]; ok {
		return text, nil
	}
	return "", fmt.Errorf("unexpected status 404")
}

func (f *fakeFetcher) Preview(_ context.Context, url string) (*tools.PagePreview, error) {
	f.previewed++
	if p, ok := f.previews[url]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("connection refused")
}
