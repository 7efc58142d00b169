package identity

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryConcurrentDuplicateInsert(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, User{ID: uuid.NewString(), Name: "A", Email: "a@x.com", PasswordHash: []byte("h")})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if KindOf(err) == KindConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}

func TestMemoryRepositoryFindByID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, repo.Create(ctx, User{ID: id, Name: "A", Email: "A@X.com", PasswordHash: []byte("h")}))

	user, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.Equal(t, KindNotFound, KindOf(err))
}
