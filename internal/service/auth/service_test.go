package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medrec/hospital-api/internal/config"
	"github.com/medrec/hospital-api/internal/repository/sqlite"
	"github.com/medrec/hospital-api/pkg/security"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := sqlite.NewDB(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	// MinCost keeps the hashing fast in tests
	return NewService(sqlite.NewAdminRepository(db), security.NewBcryptHasher(4))
}

func TestBootstrapSeedsOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, "admin", "admin123"))

	// a second bootstrap is a no-op
	require.NoError(t, svc.Bootstrap(ctx, "admin", "other-password"))

	admin, err := svc.Login(ctx, "admin", "admin123", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, "admin", "admin123"))

	_, err := svc.Login(ctx, "admin", "wrong", "10.0.0.2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "admin123", "10.0.0.2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginThrottlesAfterRepeatedFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, "admin", "admin123"))

	const ip = "10.0.0.3"
	for i := 0; i < maxFailedAttempts; i++ {
		_, err := svc.Login(ctx, "admin", "wrong", ip)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// even the right password is rejected once throttled
	_, err := svc.Login(ctx, "admin", "admin123", ip)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// a different client is unaffected
	admin, err := svc.Login(ctx, "admin", "admin123", "10.0.0.4")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}
