// ABOUTME: Project store methods for the portfolio project list
// ABOUTME: Full CRUD; edits replace title/description/link wholesale

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateProject inserts a new project and assigns its ID. An empty Link is
// stored as NULL so the public page can distinguish "no link" cleanly.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (title, description, link)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, project.Title, project.Description, nullable(project.Link))
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting project id: %w", err)
	}
	project.ID = id

	s.logger.Info("created project", "id", project.ID, "title", project.Title)
	return nil
}

// GetProject retrieves a project by ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := `
		SELECT id, title, description, link
		FROM projects
		WHERE id = ?
	`

	var p Project
	var link sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &link)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}

	p.Link = link.String
	return &p, nil
}

// ListProjects returns all projects in insertion order.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT id, title, description, link
		FROM projects
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*Project
	for rows.Next() {
		var p Project
		var link sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &link); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.Link = link.String
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// UpdateProject replaces the title, description and link of an existing
// project. Updating a project that does not exist is a no-op.
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET title = ?, description = ?, link = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, project.Title, project.Description, nullable(project.Link), project.ID)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	if n, _ := result.RowsAffected(); n > 0 {
		s.logger.Info("updated project", "id", project.ID, "title", project.Title)
	}
	return nil
}

// DeleteProject removes a project by ID. Deleting a project that does not
// exist is a no-op, not an error.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	if n, _ := result.RowsAffected(); n > 0 {
		s.logger.Info("deleted project", "id", id)
	}
	return nil
}

// CountProjects returns the number of stored projects.
func (s *SQLiteStore) CountProjects(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}

// nullable converts an empty string to a NULL column value.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
