package llm

import "fmt"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged entry in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StructuredResult is the fixed output schema every completion is constrained to.
type StructuredResult struct {
	Summary         string   `json:"summary"`
	FullExplanation string   `json:"full_explanation"`
	RelevantSources []string `json:"relevant_sources"`
	SearchKeywords  []string `json:"search_keywords"`
}

// ParseError means the model's output did not satisfy the schema contract.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("llm: schema violation: missing field %q", e.Field)
	}
	return fmt.Sprintf("llm: schema violation: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ServiceError means the completion service itself failed.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return fmt.Sprintf("llm: service error: %v", e.Err) }

func (e *ServiceError) Unwrap() error { return e.Err }
