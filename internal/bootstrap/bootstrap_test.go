package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donovan057/portfolio/internal/auth"
	"github.com/donovan057/portfolio/internal/store"
)

func setupTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRun_SeedsDefaultAdmin(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, "admin"))

	admin, err := st.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Digest("admin"), admin.Password)
}

func TestRun_Idempotent(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, "admin"))
	first, err := st.GetAdmin(ctx)
	require.NoError(t, err)

	// A second run must not create another record or touch the existing one
	require.NoError(t, Run(ctx, st, "admin"))
	second, err := st.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Password, second.Password)
}

func TestRun_PreservesChangedPassword(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, "admin"))
	admin, err := st.GetAdmin(ctx)
	require.NoError(t, err)

	// Simulate a password change through the settings flow
	require.NoError(t, st.UpdateAdminPassword(ctx, admin.ID, auth.Digest("new password")))

	// Bootstrap on restart must not reset the credential to the default
	require.NoError(t, Run(ctx, st, "admin"))
	after, err := st.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Digest("new password"), after.Password)
}
