package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mhassouna/docuchat/internal/query"
)

// handleAskDocuments runs a full chat exchange and returns the answer.
func (s *Server) handleAskDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	result, err := s.svc.Ask(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chat failed: %v", err)), nil
	}

	return mcp.NewToolResultText(result.Response), nil
}

// handleExtractFilters runs only the annotation stage: extraction and
// compilation, without calling the answering provider.
func (s *Server) handleExtractFilters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	snap, err := s.reader.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading catalog: %v", err)), nil
	}
	if snap == nil {
		return mcp.NewToolResultText("No catalog snapshot found: nothing is indexed yet, so no filters can be extracted."), nil
	}

	filters := query.Extract(question, snap)

	payload := struct {
		Filters    query.Filters `json:"filters"`
		Expression *string       `json:"filter_expression"`
	}{Filters: filters}
	if expr, ok := filters.Compile(); ok {
		payload.Expression = &expr
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding filters: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
