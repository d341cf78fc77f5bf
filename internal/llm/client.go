package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Client issues chat completions constrained to the StructuredResult schema.
// The model is fixed at construction; one outbound call per Complete.
type Client struct {
	api    *openai.Client
	model  string
	schema *jsonschema.Definition
}

// NewClient builds a completion client. baseURL overrides the default OpenAI
// endpoint when non-empty (useful for compatible servers and tests).
func NewClient(apiKey, model, baseURL string) (*Client, error) {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	schema, err := jsonschema.GenerateSchemaForType(StructuredResult{})
	if err != nil {
		return nil, fmt.Errorf("llm: generate schema: %w", err)
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		schema: schema,
	}, nil
}

// Complete sends the conversation and returns the model's structured answer.
// The conversation must contain at least one user message. Failures are either
// a *ServiceError (upstream) or a *ParseError (output broke the schema); there
// is no retry.
func (c *Client) Complete(ctx context.Context, messages []Message) (*StructuredResult, error) {
	hasUser := false
	for _, m := range messages {
		if m.Role == RoleUser {
			hasUser = true
			break
		}
	}
	if !hasUser {
		return nil, errors.New("llm: conversation must contain at least one user message")
	}

	apiMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		apiMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: apiMessages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "structured_answer",
				Schema: c.schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ServiceError{Err: errors.New("no choices in response")}
	}

	return decodeStructuredResult(resp.Choices[0].Message.Content)
}

// decodeStructuredResult enforces the schema contract locally instead of
// trusting the provider: every field must be present and correctly typed.
func decodeStructuredResult(raw string) (*StructuredResult, error) {
	var shadow struct {
		Summary         *string   `json:"summary"`
		FullExplanation *string   `json:"full_explanation"`
		RelevantSources *[]string `json:"relevant_sources"`
		SearchKeywords  *[]string `json:"search_keywords"`
	}
	if err := json.Unmarshal([]byte(raw), &shadow); err != nil {
		return nil, &ParseError{Err: err}
	}
	switch {
	case shadow.Summary == nil:
		return nil, &ParseError{Field: "summary"}
	case shadow.FullExplanation == nil:
		return nil, &ParseError{Field: "full_explanation"}
	case shadow.RelevantSources == nil:
		return nil, &ParseError{Field: "relevant_sources"}
	case shadow.SearchKeywords == nil:
		return nil, &ParseError{Field: "search_keywords"}
	}
	return &StructuredResult{
		Summary:         *shadow.Summary,
		FullExplanation: *shadow.FullExplanation,
		RelevantSources: *shadow.RelevantSources,
		SearchKeywords:  *shadow.SearchKeywords,
	}, nil
}
