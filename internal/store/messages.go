// ABOUTME: Message store methods for contact form submissions
// ABOUTME: Messages are append-only for visitors; the admin may delete them

package store

import (
	"context"
	"fmt"
)

// CreateMessage inserts a new contact message and assigns its ID.
func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO messages (name, email, message, date)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, msg.Name, msg.Email, msg.Message, msg.Date)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting message id: %w", err)
	}
	msg.ID = id

	s.logger.Info("created message", "id", msg.ID, "email", msg.Email)
	return nil
}

// ListMessages returns all messages in insertion order.
func (s *SQLiteStore) ListMessages(ctx context.Context) ([]*Message, error) {
	query := `
		SELECT id, name, email, message, date
		FROM messages
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []*Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Date); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	return messages, nil
}

// DeleteMessage removes a message by ID. Deleting a message that does not
// exist is a no-op, not an error.
func (s *SQLiteStore) DeleteMessage(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}

	if n, _ := result.RowsAffected(); n > 0 {
		s.logger.Info("deleted message", "id", id)
	}
	return nil
}

// CountMessages returns the number of stored messages.
func (s *SQLiteStore) CountMessages(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return count, nil
}
