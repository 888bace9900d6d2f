package repository

import (
	"strings"
	"sync"
	"time"

	"planner-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryUserRepository is an in-memory UserRepository used when the server
// runs with SKIP_DB=1 and as a fixture in tests.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string
}

// NewMemoryUserRepository creates an in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := r.byEmail[email]; exists {
		return domain.ErrEmailTaken
	}

	user.ID = uuid.New().String()
	user.Email = email
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[email] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *memoryUserRepository) FindByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}
