package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhassouna/docuchat/internal/db"
	"github.com/mhassouna/docuchat/internal/query"
)

// Store provides persistence for chat exchanges.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new exchange. If e.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, e Exchange) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	var client, year, month, filterExpr sql.NullString
	if v, ok := e.Filters.Client(); ok {
		client = sql.NullString{String: v, Valid: true}
	}
	if v, ok := e.Filters.Year(); ok {
		year = sql.NullString{String: v, Valid: true}
	}
	if v, ok := e.Filters.Month(); ok {
		month = sql.NullString{String: v, Valid: true}
	}
	if e.FilterExpr != "" {
		filterExpr = sql.NullString{String: e.FilterExpr, Valid: true}
	}

	failed := 0
	if e.Failed {
		failed = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_exchanges (
			id, question, client, year, month, filter_expr,
			answer, provider, model, failed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Question,
		client,
		year,
		month,
		filterExpr,
		e.Answer,
		e.Provider,
		e.Model,
		failed,
	)
	if err != nil {
		return fmt.Errorf("inserting exchange: %w", err)
	}
	return nil
}

// List returns exchanges matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Exchange, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Client != "" {
		clauses = append(clauses, "client = ?")
		args = append(args, filter.Client)
	}
	if filter.Year != "" {
		clauses = append(clauses, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.Month != "" {
		clauses = append(clauses, "month = ?")
		args = append(args, filter.Month)
	}

	q := "SELECT id, created_at, question, client, year, month, filter_expr, answer, provider, model, failed FROM chat_exchanges"
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		q += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		e, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, *e)
	}
	return exchanges, rows.Err()
}

// DeleteBefore removes all exchanges older than the given time. Returns
// the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM chat_exchanges WHERE created_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old exchanges: %w", err)
	}
	return res.RowsAffected()
}

func scanExchange(rows *sql.Rows) (*Exchange, error) {
	var (
		e                               Exchange
		ts                              string
		client, year, month, filterExpr sql.NullString
		failed                          int
	)

	err := rows.Scan(
		&e.ID, &ts, &e.Question, &client, &year, &month, &filterExpr,
		&e.Answer, &e.Provider, &e.Model, &failed,
	)
	if err != nil {
		return nil, err
	}

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.CreatedAt = t
	} else if t, parseErr := time.Parse("2006-01-02T15:04:05Z", ts); parseErr == nil {
		e.CreatedAt = t
	}

	e.Filters = query.NewFilters(
		nullable(client),
		nullable(year),
		nullable(month),
	)
	if filterExpr.Valid {
		e.FilterExpr = filterExpr.String
	}
	e.Failed = failed != 0

	return &e, nil
}

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
