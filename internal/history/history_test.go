package history

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mhassouna/docuchat/internal/catalog"
	"github.com/mhassouna/docuchat/internal/db"
	"github.com/mhassouna/docuchat/internal/query"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func sampleFilters() query.Filters {
	snap := &catalog.Snapshot{
		Clients: []string{"client_a"},
		Years:   []string{"2023"},
	}
	return query.Extract("jan invoices for client_a in 2023", snap)
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	filters := sampleFilters()
	expr, _ := filters.Compile()

	err := store.Record(ctx, Exchange{
		Question:   "jan invoices for client_a in 2023",
		Filters:    filters,
		FilterExpr: expr,
		Answer:     "The January 2023 invoices total X.",
		Provider:   "google",
		Model:      "gemini-2.5-flash-lite",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	exchanges, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(exchanges))
	}

	e := exchanges[0]
	if e.ID == "" {
		t.Error("expected generated ID")
	}
	if e.Filters != filters {
		t.Errorf("filters round trip: got %+v, want %+v", e.Filters, filters)
	}
	if e.FilterExpr != expr {
		t.Errorf("filter_expr: got %q, want %q", e.FilterExpr, expr)
	}
	if e.Failed {
		t.Error("exchange should not be marked failed")
	}
}

func TestRecordUnsetFiltersStayUnset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Record(ctx, Exchange{
		Question: "what is the total balance?",
		Answer:   "42",
		Provider: "google",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	exchanges, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !exchanges[0].Filters.IsEmpty() {
		t.Errorf("expected empty filters after round trip, got %+v", exchanges[0].Filters)
	}
	if exchanges[0].FilterExpr != "" {
		t.Errorf("expected empty filter_expr, got %q", exchanges[0].FilterExpr)
	}
}

func TestListFiltersByClient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := &catalog.Snapshot{Clients: []string{"client_a", "client_b"}}

	for _, q := range []string{"about client_a", "about client_b", "nothing specific"} {
		if err := store.Record(ctx, Exchange{
			Question: q,
			Filters:  query.Extract(q, snap),
			Answer:   "ok",
		}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	exchanges, err := store.List(ctx, ListFilter{Client: "client_b"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("expected 1 exchange for client_b, got %d", len(exchanges))
	}
	if client, _ := exchanges[0].Filters.Client(); client != "client_b" {
		t.Errorf("got client %q", client)
	}
}

func TestListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, Exchange{Question: "q", Answer: "a"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	exchanges, err := store.List(ctx, ListFilter{Limit: 3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(exchanges) != 3 {
		t.Errorf("expected 3 exchanges, got %d", len(exchanges))
	}
}

func TestDeleteBefore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, Exchange{Question: "q", Answer: "a"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Everything is newer than a cutoff in the past.
	deleted, err := store.DeleteBefore(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}

	// A future cutoff removes it.
	deleted, err = store.DeleteBefore(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}
}

func TestHistoryRoutes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, Exchange{
		Question: "jan invoices",
		Filters:  query.Extract("jan invoices", &catalog.Snapshot{}),
		Answer:   "listed",
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest("GET", "/api/history", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("GET /api/history: status %d", rec.Code)
	}

	var exchanges []Exchange
	if err := json.Unmarshal(rec.Body.Bytes(), &exchanges); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(exchanges))
	}
	if month, ok := exchanges[0].Filters.Month(); !ok || month != "january" {
		t.Errorf("month filter lost over the API: %q (set=%v)", month, ok)
	}
}

func TestHistoryRoutesDeleteRequiresBefore(t *testing.T) {
	store := newTestStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest("DELETE", "/api/history", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Errorf("expected 400 without before parameter, got %d", rec.Code)
	}
}
