package query

import (
	"testing"

	"github.com/mhassouna/docuchat/internal/catalog"
)

func testSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		StoreID:  "fileSearchStores/test",
		Uploaded: 10,
		Clients:  []string{"client_a", "client_b"},
		Years:    []string{"2023", "2024"},
	}
}

func TestExtractClientSurfaceForms(t *testing.T) {
	snap := testSnapshot()

	queries := []string{
		"invoices for client_a please",
		"invoices for client a please",
		"invoices for clienta please",
		"invoices for Client A please",
		"invoices for CLIENT A please",
	}
	for _, q := range queries {
		f := Extract(q, snap)
		client, ok := f.Client()
		if !ok || client != "client_a" {
			t.Errorf("Extract(%q): client = %q, set=%v; want client_a", q, client, ok)
		}
	}
}

func TestExtractClientRequiresWordBoundary(t *testing.T) {
	snap := testSnapshot()

	f := Extract("the clientable report", snap)
	if _, ok := f.Client(); ok {
		t.Errorf("partial token should not match a client, got %+v", f)
	}
}

func TestExtractFirstCatalogClientWins(t *testing.T) {
	q := "compare client_b against client_a"

	// client_a is first in catalog order, so it wins even though client_b
	// appears first in the text.
	f := Extract(q, testSnapshot())
	if client, _ := f.Client(); client != "client_a" {
		t.Errorf("got client %q, want client_a (first in catalog order)", client)
	}

	// Reversing catalog order flips the winner.
	reversed := &catalog.Snapshot{Clients: []string{"client_b", "client_a"}}
	f = Extract(q, reversed)
	if client, _ := f.Client(); client != "client_b" {
		t.Errorf("got client %q, want client_b (first in catalog order)", client)
	}
}

func TestExtractFullQuery(t *testing.T) {
	f := Extract("show me jan invoices for client_a in 2023", testSnapshot())

	if client, ok := f.Client(); !ok || client != "client_a" {
		t.Errorf("client = %q (set=%v), want client_a", client, ok)
	}
	if year, ok := f.Year(); !ok || year != "2023" {
		t.Errorf("year = %q (set=%v), want 2023", year, ok)
	}
	if month, ok := f.Month(); !ok || month != "january" {
		t.Errorf("month = %q (set=%v), want january", month, ok)
	}

	expr, ok := f.Compile()
	if !ok {
		t.Fatal("expected a compiled expression")
	}
	want := `client = "client_a" AND year = "2023" AND month = "january"`
	if expr != want {
		t.Errorf("compiled expression:\n got %q\nwant %q", expr, want)
	}
}

func TestExtractNoRecognizableTokens(t *testing.T) {
	f := Extract("what is the total outstanding balance?", testSnapshot())

	if !f.IsEmpty() {
		t.Errorf("expected empty filters, got %+v", f)
	}
	if expr, ok := f.Compile(); ok || expr != "" {
		t.Errorf("expected absent expression, got %q (ok=%v)", expr, ok)
	}
}

func TestExtractNilSnapshot(t *testing.T) {
	f := Extract("jan invoices for client_a in 2023", nil)
	if !f.IsEmpty() {
		t.Errorf("nil snapshot must yield empty filters, got %+v", f)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	snap := testSnapshot()
	q := "feb statements for client b, 2024"

	first := Extract(q, snap)
	second := Extract(q, snap)
	if first != second {
		t.Errorf("extraction not deterministic: %+v vs %+v", first, second)
	}
}

func TestExtractMonthAliases(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"statements from september", "september"},
		{"statements from sept", "september"},
		{"statements from sep", "september"},
		{"the misc folder", "others"},
		{"any other documents", "others"},
		{"paid in jan", "january"},
		{"due in may", "may"},
		{"december summary", "december"},
	}
	for _, tt := range tests {
		f := Extract(tt.query, testSnapshot())
		month, ok := f.Month()
		if !ok || month != tt.want {
			t.Errorf("Extract(%q): month = %q (set=%v), want %q", tt.query, month, ok, tt.want)
		}
	}
}

func TestExtractMonthCanonicalOrderWins(t *testing.T) {
	// Both january and march appear; january is earlier in canonical order.
	f := Extract("compare march against jan", testSnapshot())
	if month, _ := f.Month(); month != "january" {
		t.Errorf("got month %q, want january", month)
	}
}

func TestExtractMonthRequiresWordBoundary(t *testing.T) {
	f := Extract("the maybank statement", testSnapshot())
	if month, ok := f.Month(); ok {
		t.Errorf("'maybank' should not match a month, got %q", month)
	}
}

func TestExtractYearRawContainment(t *testing.T) {
	// Year matching is raw substring containment, not word-boundary: a
	// digit run embedding a known year still matches.
	f := Extract("reference 42023 for client_a", testSnapshot())
	if year, ok := f.Year(); !ok || year != "2023" {
		t.Errorf("year = %q (set=%v), want 2023 via substring containment", year, ok)
	}
}

func TestExtractYearFirstCatalogOrderWins(t *testing.T) {
	f := Extract("compare 2024 to 2023", testSnapshot())
	// 2023 precedes 2024 in the catalog, so it wins.
	if year, _ := f.Year(); year != "2023" {
		t.Errorf("got year %q, want 2023", year)
	}
}

func TestClientVariants(t *testing.T) {
	got := clientVariants("client_a")
	want := []string{"client_a", "client a", "clienta"}
	if len(got) != len(want) {
		t.Fatalf("variants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("variants[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Single-token identifiers produce no duplicates.
	got = clientVariants("acme")
	if len(got) != 1 || got[0] != "acme" {
		t.Errorf("variants for single token = %v, want [acme]", got)
	}
}
