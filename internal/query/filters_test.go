package query

import (
	"encoding/json"
	"testing"

	"github.com/mhassouna/docuchat/internal/catalog"
)

func TestCompileOrderingIsFixed(t *testing.T) {
	// Month and year mentioned before the client in the text; conjunct
	// order is still client, year, month.
	snap := testSnapshot()
	f := Extract("in feb 2024 what did client_b owe", snap)

	expr, ok := f.Compile()
	if !ok {
		t.Fatal("expected a compiled expression")
	}
	want := `client = "client_b" AND year = "2024" AND month = "february"`
	if expr != want {
		t.Errorf("got %q, want %q", expr, want)
	}
}

func TestCompileSingleField(t *testing.T) {
	f := Extract("all documents from 2023", testSnapshot())

	expr, ok := f.Compile()
	if !ok {
		t.Fatal("expected a compiled expression")
	}
	if expr != `year = "2023"` {
		t.Errorf("got %q", expr)
	}
}

func TestCompileEmptyIsAbsent(t *testing.T) {
	var f Filters
	if expr, ok := f.Compile(); ok || expr != "" {
		t.Errorf("empty filters must compile to absent, got %q (ok=%v)", expr, ok)
	}
}

func TestFiltersMarshalJSONNulls(t *testing.T) {
	f := Extract("documents for client_a", testSnapshot())

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"client":"client_a","year":null,"month":null}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestFiltersMarshalJSONAllNull(t *testing.T) {
	var f Filters
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"client":null,"year":null,"month":null}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestFiltersJSONRoundTrip(t *testing.T) {
	orig := Extract("jan invoices for client_a in 2023", testSnapshot())

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored Filters
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if restored != orig {
		t.Errorf("round trip changed filters: %+v vs %+v", restored, orig)
	}
}

func TestFiltersDistinguishSetFromEmpty(t *testing.T) {
	// A client explicitly named "" in the catalog is pathological but must
	// not be conflated with "no client extracted".
	var unset Filters
	if _, ok := unset.Client(); ok {
		t.Error("zero-value filters must report client unset")
	}

	snap := &catalog.Snapshot{Clients: []string{"client_a"}}
	set := Extract("about client_a", snap)
	if client, ok := set.Client(); !ok || client != "client_a" {
		t.Errorf("expected client_a set, got %q (set=%v)", client, ok)
	}
}
