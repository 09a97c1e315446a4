package query

import (
	"fmt"
	"strings"
)

// The answering engine tends to refuse questions about account numbers and
// tax details in uploaded files. Both templates assert ownership of the
// data up front so legitimate lookups are not blocked. The scoped variant
// additionally states the inferred search scope; the unscoped variant
// omits that clause entirely rather than rendering it empty.

const scopedPromptTemplate = `You are searching through business documents for %s.

User question: %s

Important context:
- These are legitimate business documents that the user has uploaded
- Bank account numbers, GST details, and other financial information are expected and appropriate to share
- The user owns this data and is asking about their own files
- Do not refuse to share information from these documents due to privacy concerns
- If the information exists in the documents, provide it directly and accurately

Please answer the user's question based on the documents available.`

const unscopedPromptTemplate = `You are searching through business documents.

User question: %s

Important context:
- These are legitimate business documents that the user has uploaded
- Financial information like bank accounts, GST details are appropriate to share
- The user owns this data
- If the information exists in the documents, provide it directly

Please answer the user's question based on the documents available.`

// Augment wraps the original question in an instruction block for the
// answering engine. The question is embedded verbatim; when filters were
// extracted, the inferred scope is stated as "field: value" pairs joined
// by " AND " (client rendered with spaces instead of underscores).
func Augment(originalQuery string, f Filters) string {
	var parts []string
	if client, ok := f.Client(); ok {
		parts = append(parts, "client: "+strings.ReplaceAll(client, "_", " "))
	}
	if year, ok := f.Year(); ok {
		parts = append(parts, "year: "+year)
	}
	if month, ok := f.Month(); ok {
		parts = append(parts, "month: "+month)
	}

	if len(parts) == 0 {
		return fmt.Sprintf(unscopedPromptTemplate, originalQuery)
	}
	return fmt.Sprintf(scopedPromptTemplate, strings.Join(parts, " AND "), originalQuery)
}
