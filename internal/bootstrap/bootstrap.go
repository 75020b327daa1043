// ABOUTME: First-run initialization of the admin credential record
// ABOUTME: Seeds one default admin if none exists; idempotent across restarts

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/donovan057/portfolio/internal/auth"
	"github.com/donovan057/portfolio/internal/store"
)

// Run ensures an admin credential record exists, creating one with the digest
// of defaultPassword when the store holds none. Schema creation is handled by
// the store itself on open, so after Run a freshly started process always has
// both schema and credential. Calling Run repeatedly never creates a second
// record.
func Run(ctx context.Context, st store.Store, defaultPassword string) error {
	logger := slog.Default().With("component", "bootstrap")

	_, err := st.GetAdmin(ctx)
	if err == nil {
		logger.Debug("admin record present, nothing to do")
		return nil
	}
	if !errors.Is(err, store.ErrNoAdmin) {
		return fmt.Errorf("checking for admin record: %w", err)
	}

	admin := &store.Admin{Password: auth.Digest(defaultPassword)}
	if err := st.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}

	logger.Info("seeded default admin credential", "id", admin.ID)
	logger.Warn("default admin password in use, change it via /admin/settings")
	return nil
}
