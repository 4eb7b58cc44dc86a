package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// userMemoryRepository keeps accounts in a map keyed by email. It backs
// local runs and tests; nothing survives a restart.
type userMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.UserAccount
	logger  *logger.Logger
}

func NewUserMemoryRepository(log *logger.Logger) UserRepository {
	log.Debug().Msg("creating in-memory user repository")
	return &userMemoryRepository{
		byEmail: make(map[string]models.UserAccount),
		logger:  log,
	}
}

func (r *userMemoryRepository) FindUsersByEmail(_ context.Context, email string) ([]models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return []models.UserAccount{}, nil
	}

	return []models.UserAccount{user}, nil
}

func (r *userMemoryRepository) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		logger.FromContext(ctx).Debug().Str("func", "*userMemoryRepository.CreateUser").Msg("email already taken")
		return models.UserAccount{}, ErrUserAlreadyExists
	}

	user.ID = utils.NewID()
	user.CreatedAt = time.Now().UTC()
	r.byEmail[user.Email] = user

	return user, nil
}
