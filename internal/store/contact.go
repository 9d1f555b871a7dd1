package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SaveContactMessage stores a message and returns its ID.
func (s *SQLiteStore) SaveContactMessage(ctx context.Context, m ContactMessage) (int64, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES (?, ?, ?, ?)`,
		m.Name, m.Email, m.Message, m.CreatedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("saving contact message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading contact message id: %w", err)
	}
	return id, nil
}

// MarkContactDelivered records that the message was mailed.
func (s *SQLiteStore) MarkContactDelivered(ctx context.Context, id int64, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE contact_messages SET delivered_at = ? WHERE id = ?", at.Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("marking contact message %d delivered: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contact message %d not found", id)
	}
	return nil
}

// ContactMessages returns stored messages, newest first.
func (s *SQLiteStore) ContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, email, message, created_at, delivered_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []ContactMessage
	for rows.Next() {
		var (
			m           ContactMessage
			createdAt   int64
			deliveredAt sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt, &deliveredAt); err != nil {
			return nil, fmt.Errorf("scanning contact message row: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0).UTC()
		if deliveredAt.Valid {
			t := time.Unix(deliveredAt.Int64, 0).UTC()
			m.DeliveredAt = &t
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
