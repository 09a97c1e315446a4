package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Filters holds the structured scope inferred from a user question. Each
// field is tagged set/unset rather than using the empty string, so "no
// client mentioned" is distinguishable from a client literally named "".
type Filters struct {
	client string
	year   string
	month  string

	clientSet bool
	yearSet   bool
	monthSet  bool
}

// NewFilters builds a Filters value from optional fields. Nil means unset.
// Used to rehydrate stored filters; extraction always goes through Extract.
func NewFilters(client, year, month *string) Filters {
	var f Filters
	if client != nil {
		f.client, f.clientSet = *client, true
	}
	if year != nil {
		f.year, f.yearSet = *year, true
	}
	if month != nil {
		f.month, f.monthSet = *month, true
	}
	return f
}

// Client returns the canonical client identifier and whether it was set.
func (f Filters) Client() (string, bool) { return f.client, f.clientSet }

// Year returns the matched year string and whether it was set.
func (f Filters) Year() (string, bool) { return f.year, f.yearSet }

// Month returns the canonical month name and whether it was set.
func (f Filters) Month() (string, bool) { return f.month, f.monthSet }

// IsEmpty reports whether no field was extracted.
func (f Filters) IsEmpty() bool {
	return !f.clientSet && !f.yearSet && !f.monthSet
}

// Compile renders the filters as a metadata filter expression in the
// downstream evaluator's grammar: `field = "value"` conjuncts joined by
// " AND ", always ordered client, year, month. The second return value is
// false when no field is set; callers must then omit the expression
// entirely, since an empty string is not a valid "no filter" in that
// grammar.
func (f Filters) Compile() (string, bool) {
	var conds []string
	if f.clientSet {
		conds = append(conds, fmt.Sprintf(`client = %q`, f.client))
	}
	if f.yearSet {
		conds = append(conds, fmt.Sprintf(`year = %q`, f.year))
	}
	if f.monthSet {
		conds = append(conds, fmt.Sprintf(`month = %q`, f.month))
	}
	if len(conds) == 0 {
		return "", false
	}
	return strings.Join(conds, " AND "), true
}

// filtersJSON is the API-boundary representation: unset fields are null.
type filtersJSON struct {
	Client *string `json:"client"`
	Year   *string `json:"year"`
	Month  *string `json:"month"`
}

// MarshalJSON renders the filters with explicit nulls for unset fields.
func (f Filters) MarshalJSON() ([]byte, error) {
	var p filtersJSON
	if f.clientSet {
		p.Client = &f.client
	}
	if f.yearSet {
		p.Year = &f.year
	}
	if f.monthSet {
		p.Month = &f.month
	}
	return json.Marshal(p)
}

// UnmarshalJSON restores filters from the API-boundary representation.
func (f *Filters) UnmarshalJSON(data []byte) error {
	var p filtersJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = Filters{}
	if p.Client != nil {
		f.client, f.clientSet = *p.Client, true
	}
	if p.Year != nil {
		f.year, f.yearSet = *p.Year, true
	}
	if p.Month != nil {
		f.month, f.monthSet = *p.Month, true
	}
	return nil
}
