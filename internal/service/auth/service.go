package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/medrec/hospital-api/internal/model"
	"github.com/medrec/hospital-api/internal/repository"
	"github.com/medrec/hospital-api/pkg/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
)

const maxFailedAttempts = 5

type Service struct {
	repo     repository.AdminRepository
	hasher   security.PasswordHasher
	failures *cache.Cache
}

func NewService(repo repository.AdminRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		failures: cache.New(15*time.Minute, 5*time.Minute),
	}
}

// Login verifies the credentials against the stored bcrypt hash. bcrypt's
// comparison is constant-time. Failed attempts are counted per client IP and
// throttled after maxFailedAttempts within the cache TTL.
func (s *Service) Login(ctx context.Context, username, password, clientIP string) (*model.Admin, error) {
	if n, found := s.failures.Get(clientIP); found && n.(int) >= maxFailedAttempts {
		return nil, ErrTooManyAttempts
	}

	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.recordFailure(clientIP)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		s.recordFailure(clientIP)
		return nil, ErrInvalidCredentials
	}

	s.failures.Delete(clientIP)
	return admin, nil
}

func (s *Service) recordFailure(clientIP string) {
	if err := s.failures.Add(clientIP, 1, cache.DefaultExpiration); err != nil {
		s.failures.IncrementInt(clientIP, 1)
	}
}

// Bootstrap seeds the default admin account when none exists. Dev-only:
// the caller gates this behind the bootstrap.seed_admin config flag because
// shipping a hard-coded credential is a deployment weakness.
func (s *Service) Bootstrap(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	return s.repo.Create(ctx, &model.Admin{
		Username:     username,
		PasswordHash: hash,
	})
}
