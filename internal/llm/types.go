package llm

// AnswerRequest contains the parameters for an answering request.
type AnswerRequest struct {
	Model  string
	Prompt string

	// StoreID identifies the indexed document store to ground the answer
	// in, for providers with managed document search.
	StoreID string

	// Filter is a metadata filter expression restricting which indexed
	// documents may ground the answer. Empty means unconstrained.
	Filter string

	Temperature float64
}

// AnswerResponse contains the result of an answering request.
type AnswerResponse struct {
	Text         string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
