// ABOUTME: Store interface and record types for portfolio persistence
// ABOUTME: Defines Message, Project, Admin structs and the Store interface

package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// ErrNoAdmin is returned when no admin credential record exists
var ErrNoAdmin = errors.New("no admin record")

// Message represents a contact form submission. Messages are created by
// visitors and only ever deleted by the admin, never updated.
type Message struct {
	ID      int64
	Name    string
	Email   string
	Message string
	Date    string // display timestamp captured at creation
}

// Project represents a portfolio entry shown on the public projects page.
type Project struct {
	ID          int64
	Title       string
	Description string
	Link        string // optional, empty when the project has no external link
}

// Admin holds the single admin credential. Password is the hex digest of
// the admin password, never plaintext. Exactly one record is expected to
// exist; readers treat the first row as canonical.
type Admin struct {
	ID       int64
	Password string
}

// Store defines the interface for message, project and admin persistence
type Store interface {
	// Messages
	CreateMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context) ([]*Message, error)
	DeleteMessage(ctx context.Context, id int64) error

	// Projects
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error

	// Admin credential
	CreateAdmin(ctx context.Context, admin *Admin) error
	GetAdmin(ctx context.Context) (*Admin, error)
	UpdateAdminPassword(ctx context.Context, id int64, digest string) error

	// Counts (operator CLI)
	CountMessages(ctx context.Context) (int, error)
	CountProjects(ctx context.Context) (int, error)

	// Close releases any resources held by the store
	Close() error
}
