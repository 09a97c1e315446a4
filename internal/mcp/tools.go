package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askDocumentsTool defines the ask_documents MCP tool.
var askDocumentsTool = mcp.NewTool("ask_documents",
	mcp.WithDescription("Ask a question about the indexed business documents. Scope filters (client, year, month) are inferred from the question automatically."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question about the documents"),
	),
)

// extractFiltersTool defines the extract_filters MCP tool.
var extractFiltersTool = mcp.NewTool("extract_filters",
	mcp.WithDescription("Show which scope filters (client, year, month) would be inferred from a question, and the metadata filter expression they compile to, without answering it."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question to analyze"),
	),
)
