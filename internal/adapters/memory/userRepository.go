package memory

import (
	"rasaneh/internal/core/user"
	userPort "rasaneh/internal/ports/user"
)

// UserRepositoryMemory پیاده‌سازی UserRepository روی Directory
type UserRepositoryMemory struct {
	dir *Directory
}

// NewUserRepositoryMemory سازنده UserRepositoryMemory
func NewUserRepositoryMemory(dir *Directory) *UserRepositoryMemory {
	return &UserRepositoryMemory{dir: dir}
}

func (repo *UserRepositoryMemory) Create(u *user.User) (*user.User, error) {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	// registration is never an overwrite
	if _, ok := repo.dir.users[u.ID]; ok {
		return nil, userPort.ErrUserExists
	}

	u.CreatedAt = repo.dir.now()
	repo.dir.users[u.ID] = u
	repo.dir.following[u.ID] = make(map[string]struct{})
	repo.dir.followers[u.ID] = make(map[string]struct{})
	return u, nil
}

func (repo *UserRepositoryMemory) FindByID(id string) (*user.User, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()

	u, ok := repo.dir.users[id]
	if !ok {
		return nil, userPort.ErrUserNotFound
	}
	return u, nil
}
