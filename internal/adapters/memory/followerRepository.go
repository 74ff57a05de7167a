package memory

import (
	"context"
	"sort"

	"rasaneh/internal/core/user"
	userPort "rasaneh/internal/ports/user"
)

// FollowerRepositoryMemory پیاده‌سازی FollowerRepository روی Directory
type FollowerRepositoryMemory struct {
	dir *Directory
}

// NewFollowerRepositoryMemory سازنده FollowerRepositoryMemory
func NewFollowerRepositoryMemory(dir *Directory) *FollowerRepositoryMemory {
	return &FollowerRepositoryMemory{dir: dir}
}

// Follow افزودن یال دنبال‌کردن به هر دو طرف زیر یک قفل
//
// Self-follow and an already-present edge are no-ops.
func (repo *FollowerRepositoryMemory) Follow(ctx context.Context, followerID, followeeID string) error {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	if err := repo.checkUsers(followerID, followeeID); err != nil {
		return err
	}
	if followerID == followeeID {
		return nil
	}
	if _, ok := repo.dir.following[followerID][followeeID]; ok {
		return nil
	}

	repo.dir.following[followerID][followeeID] = struct{}{}
	repo.dir.followers[followeeID][followerID] = struct{}{}
	return nil
}

// Unfollow حذف یال از هر دو طرف: no-op when not following
func (repo *FollowerRepositoryMemory) Unfollow(ctx context.Context, followerID, followeeID string) error {
	repo.dir.mu.Lock()
	defer repo.dir.mu.Unlock()

	if err := repo.checkUsers(followerID, followeeID); err != nil {
		return err
	}
	if _, ok := repo.dir.following[followerID][followeeID]; !ok {
		return nil
	}

	delete(repo.dir.following[followerID], followeeID)
	delete(repo.dir.followers[followeeID], followerID)
	return nil
}

func (repo *FollowerRepositoryMemory) GetFollowersByUserID(ctx context.Context, userID string) ([]*user.User, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()
	return repo.collect(repo.dir.followers[userID]), nil
}

func (repo *FollowerRepositoryMemory) GetFollowingByUserID(ctx context.Context, userID string) ([]*user.User, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()
	return repo.collect(repo.dir.following[userID]), nil
}

func (repo *FollowerRepositoryMemory) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	repo.dir.mu.RLock()
	defer repo.dir.mu.RUnlock()

	_, ok := repo.dir.following[followerID][followeeID]
	return ok, nil
}

// collect مرتب بر اساس شناسه تا خروجی قطعی باشد: باید زیر قفل صدا زده شود
func (repo *FollowerRepositoryMemory) collect(ids map[string]struct{}) []*user.User {
	users := make([]*user.User, 0, len(ids))
	for id := range ids {
		users = append(users, repo.dir.users[id])
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (repo *FollowerRepositoryMemory) checkUsers(ids ...string) error {
	for _, id := range ids {
		if _, ok := repo.dir.users[id]; !ok {
			return userPort.ErrUserNotFound
		}
	}
	return nil
}
