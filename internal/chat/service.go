package chat

import (
	"context"
	"log"

	"github.com/mhassouna/docuchat/internal/catalog"
	"github.com/mhassouna/docuchat/internal/history"
	"github.com/mhassouna/docuchat/internal/llm"
	"github.com/mhassouna/docuchat/internal/query"
)

// noIndexMessage is returned when no catalog snapshot exists: the upload
// pipeline has not indexed anything yet, so there is nothing to search.
const noIndexMessage = "No indexed documents found. Upload and index your documents first."

// Result is what a chat exchange returns to the caller: the engine's
// answer and the filters inferred from the question.
type Result struct {
	Response string        `json:"response"`
	Filters  query.Filters `json:"filters"`
}

// Service orchestrates one chat request: load the catalog snapshot,
// extract filters, compile the filter expression, augment the prompt, and
// hand both to the answering provider.
type Service struct {
	reader      *catalog.Reader
	provider    llm.Provider
	model       string
	temperature float64
	history     *history.Store
}

// NewService creates a chat service. The history store may be nil, in
// which case exchanges are not recorded.
func NewService(reader *catalog.Reader, provider llm.Provider, model string, temperature float64, hist *history.Store) *Service {
	return &Service{
		reader:      reader,
		provider:    provider,
		model:       model,
		temperature: temperature,
		history:     hist,
	}
}

// Ask answers a single question. Provider faults do not propagate: they
// come back as an error-text Result with empty filters, so the caller
// always has something to show the user. Only catalog I/O faults return
// an error.
func (s *Service) Ask(ctx context.Context, message string) (*Result, error) {
	snap, err := s.reader.Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return &Result{Response: noIndexMessage}, nil
	}

	filters := query.Extract(message, snap)
	expr, _ := filters.Compile()
	prompt := query.Augment(message, filters)

	resp, err := s.provider.Answer(ctx, llm.AnswerRequest{
		Model:       s.model,
		Prompt:      prompt,
		StoreID:     snap.StoreID,
		Filter:      expr,
		Temperature: s.temperature,
	})
	if err != nil {
		answer := "Error: " + err.Error()
		s.record(ctx, message, filters, expr, answer, true)
		return &Result{Response: answer}, nil
	}

	s.record(ctx, message, filters, expr, resp.Text, false)
	return &Result{Response: resp.Text, Filters: filters}, nil
}

// record persists the exchange. History failures are logged, never fatal:
// the user already has their answer.
func (s *Service) record(ctx context.Context, question string, filters query.Filters, expr, answer string, failed bool) {
	if s.history == nil {
		return
	}
	err := s.history.Record(ctx, history.Exchange{
		Question:   question,
		Filters:    filters,
		FilterExpr: expr,
		Answer:     answer,
		Provider:   s.provider.Name(),
		Model:      s.model,
		Failed:     failed,
	})
	if err != nil {
		log.Printf("chat: recording exchange: %v", err)
	}
}
