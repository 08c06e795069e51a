package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CounterRepository allocates monotonically increasing sequence values for
// named counters (student codes, admission reference numbers). Allocation is
// a single atomic statement, so concurrent callers never observe the same value.
type CounterRepository struct {
	db *sqlx.DB
}

// NewCounterRepository constructs a CounterRepository.
func NewCounterRepository(db *sqlx.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Next returns the next value for the named counter, creating it at 1 on first use.
func (r *CounterRepository) Next(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("counter name required")
	}
	const query = `INSERT INTO counters (name, value) VALUES ($1, 1)
        ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
        RETURNING value`
	var value int
	if err := r.db.GetContext(ctx, &value, query, name); err != nil {
		return 0, fmt.Errorf("next counter %s: %w", name, err)
	}
	return value, nil
}
