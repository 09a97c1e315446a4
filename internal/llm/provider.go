package llm

import "context"

// Provider defines the interface for downstream answering engines.
type Provider interface {
	// Answer sends an augmented prompt (and optional document filter) to
	// the engine and returns its response.
	Answer(ctx context.Context, req AnswerRequest) (*AnswerResponse, error)
	// Name returns the name of this provider.
	Name() string
}
