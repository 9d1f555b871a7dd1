package store

import (
	"context"
	"fmt"
)

// IncrementCounter adds one to the named counter and returns the new value.
func (s *SQLiteStore) IncrementCounter(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.db.GetContext(ctx, &value, `
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET value = value + 1
		RETURNING value`, name)
	if err != nil {
		return 0, fmt.Errorf("incrementing counter %s: %w", name, err)
	}
	return value, nil
}

// Counter returns the current value of the named counter, zero if unset.
func (s *SQLiteStore) Counter(ctx context.Context, name string) (int64, error) {
	var value int64
	err := s.db.GetContext(ctx, &value,
		"SELECT COALESCE(MAX(value), 0) FROM counters WHERE name = ?", name,
	)
	if err != nil {
		return 0, fmt.Errorf("reading counter %s: %w", name, err)
	}
	return value, nil
}
