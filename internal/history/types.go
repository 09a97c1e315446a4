package history

import (
	"time"

	"github.com/mhassouna/docuchat/internal/query"
)

// Exchange records one question/answer round trip, including the filters
// inferred from the question.
type Exchange struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	Question   string        `json:"question"`
	Filters    query.Filters `json:"filters"`
	FilterExpr string        `json:"filter_expr,omitempty"`
	Answer     string        `json:"answer"`
	Provider   string        `json:"provider"`
	Model      string        `json:"model"`
	Failed     bool          `json:"failed"`
}

// ListFilter controls which exchanges are returned by List.
type ListFilter struct {
	Client string
	Year   string
	Month  string
	Limit  int
	Offset int
}
