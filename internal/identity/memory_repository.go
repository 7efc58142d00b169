package identity

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]User
	byID    map[string]string
}

// NewMemoryRepository builds an in-memory user store for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]User), byID: make(map[string]string)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = normalizeEmail(user.Email)
	if _, exists := r.byEmail[user.Email]; exists {
		return ErrEmailTaken()
	}
	user.PasswordHash = append([]byte(nil), user.PasswordHash...)
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user.Email
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return User{}, ErrEmailNotFound()
	}
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.byID[id]
	if !ok {
		return User{}, ErrUserNotFound()
	}
	return r.byEmail[email], nil
}
