package query

import (
	"regexp"
	"strings"

	"github.com/mhassouna/docuchat/internal/catalog"
)

// monthAliases maps each canonical month (plus the synthetic "others"
// bucket used for uncategorized uploads) to the tokens that select it.
// Iteration order is fixed: January through December, then "others".
var monthAliases = []struct {
	name    string
	aliases []string
}{
	{"january", []string{"january", "jan"}},
	{"february", []string{"february", "feb"}},
	{"march", []string{"march", "mar"}},
	{"april", []string{"april", "apr"}},
	{"may", []string{"may"}},
	{"june", []string{"june", "jun"}},
	{"july", []string{"july", "jul"}},
	{"august", []string{"august", "aug"}},
	{"september", []string{"september", "sep", "sept"}},
	{"october", []string{"october", "oct"}},
	{"november", []string{"november", "nov"}},
	{"december", []string{"december", "dec"}},
	{"others", []string{"others", "other", "misc"}},
}

// Extract infers {client, year, month} filters from a free-text question.
// It is pure and total: any query and any snapshot (including nil, meaning
// no catalog exists yet) produce a valid Filters value.
//
// Ambiguity is resolved by catalog order: the first known client whose
// surface form appears in the query wins, even if later clients would also
// match. This is deliberate "first wins", not a ranked match.
func Extract(queryText string, snap *catalog.Snapshot) Filters {
	var f Filters
	if snap == nil {
		return f
	}

	queryLower := strings.ToLower(queryText)

	for _, id := range snap.Clients {
		if clientMentioned(queryLower, id) {
			f.client, f.clientSet = id, true
			break
		}
	}

	// Years are matched by raw substring containment on the unmodified
	// query, unlike the boundary-delimited client and month matching. This
	// asymmetry is inherited behavior: "42023" would match year "2023".
	for _, year := range snap.Years {
		if strings.Contains(queryText, year) {
			f.year, f.yearSet = year, true
			break
		}
	}

	for _, m := range monthAliases {
		for _, alias := range m.aliases {
			if wordMatch(queryLower, alias) {
				f.month, f.monthSet = m.name, true
				break
			}
		}
		if f.monthSet {
			break
		}
	}

	return f
}

// clientMentioned reports whether any surface form of the canonical client
// identifier occurs as a whole word in the lower-cased query.
func clientMentioned(queryLower, id string) bool {
	for _, variant := range clientVariants(id) {
		if wordMatch(queryLower, variant) {
			return true
		}
	}
	return false
}

// clientVariants generates the surface forms a user might write for a
// canonical identifier like "client_a": the identifier itself, the spaced
// base name ("client a"), and the collapsed form ("clienta"). Matching is
// case-insensitive, so cased renderings (Client A, CLIENT A) fold into the
// same set.
func clientVariants(id string) []string {
	base := strings.ReplaceAll(id, "_", " ")
	variants := []string{id}
	if base != id {
		variants = append(variants, base)
	}
	if collapsed := strings.ReplaceAll(base, " ", ""); collapsed != id {
		variants = append(variants, collapsed)
	}
	return variants
}

// wordMatch tests for a whole-word occurrence of token in text. Both
// arguments are expected to be lower-cased already.
func wordMatch(text, token string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(token) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
