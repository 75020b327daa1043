// ABOUTME: Admin credential store methods
// ABOUTME: A single admin row is expected; the first row is canonical

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateAdmin inserts an admin credential record and assigns its ID.
func (s *SQLiteStore) CreateAdmin(ctx context.Context, admin *Admin) error {
	result, err := s.db.ExecContext(ctx, "INSERT INTO admins (password) VALUES (?)", admin.Password)
	if err != nil {
		return fmt.Errorf("inserting admin: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting admin id: %w", err)
	}
	admin.ID = id

	s.logger.Info("created admin record", "id", admin.ID)
	return nil
}

// GetAdmin returns the canonical admin credential record. Uniqueness is not
// enforced by the schema; when more than one row exists the first is used.
// Returns ErrNoAdmin when no record exists.
func (s *SQLiteStore) GetAdmin(ctx context.Context) (*Admin, error) {
	query := `
		SELECT id, password
		FROM admins
		ORDER BY id ASC
		LIMIT 1
	`

	var admin Admin
	err := s.db.QueryRowContext(ctx, query).Scan(&admin.ID, &admin.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAdmin
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin: %w", err)
	}

	return &admin, nil
}

// UpdateAdminPassword overwrites the stored digest for the given admin record.
func (s *SQLiteStore) UpdateAdminPassword(ctx context.Context, id int64, digest string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE admins SET password = ? WHERE id = ?", digest, id)
	if err != nil {
		return fmt.Errorf("updating admin password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNoAdmin
	}

	s.logger.Info("updated admin password", "id", id)
	return nil
}
