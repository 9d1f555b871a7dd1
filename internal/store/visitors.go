package store

import (
	"context"
	"fmt"
	"time"
)

// visitRow mirrors the visitors table.
type visitRow struct {
	ID        int64  `db:"id"`
	HashedIP  string `db:"hashed_ip"`
	UserAgent string `db:"user_agent"`
	Path      string `db:"path"`
	VisitedAt int64  `db:"visited_at"`
}

func (r visitRow) visit() Visit {
	return Visit{
		ID:        r.ID,
		HashedIP:  r.HashedIP,
		UserAgent: r.UserAgent,
		Path:      r.Path,
		Timestamp: time.Unix(r.VisitedAt, 0).UTC(),
	}
}

// RecordVisit inserts a page view.
func (s *SQLiteStore) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecentVisits returns up to limit visits, newest first.
func (s *SQLiteStore) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	var rows []visitRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent visits: %w", err)
	}

	visits := make([]Visit, len(rows))
	for i, r := range rows {
		visits[i] = r.visit()
	}
	return visits, nil
}

// PurgeVisitsBefore deletes visits older than cutoff and returns how many
// were removed.
func (s *SQLiteStore) PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM visitors WHERE visited_at < ?", cutoff.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("purging visits: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Stats computes dashboard figures relative to now.
func (s *SQLiteStore) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	queries := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{weekAgo.Unix()}},
		{&stats.ResumeDownloads, "SELECT COALESCE(MAX(value), 0) FROM counters WHERE name = ?", []any{CounterResumeDownloads}},
		{&stats.ContactMessages, "SELECT COUNT(*) FROM contact_messages", nil},
	}
	for _, q := range queries {
		if err := s.db.GetContext(ctx, q.dest, q.query, q.args...); err != nil {
			return nil, fmt.Errorf("computing stats: %w", err)
		}
	}

	recent, err := s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}
