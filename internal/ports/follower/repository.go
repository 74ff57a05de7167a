package follower

import (
	"context"

	"rasaneh/internal/core/user"
)

// FollowerRepository پورت برای ذخیره‌سازی و بازیابی دنبال‌کنندگان
//
// Follow and Unfollow mutate both sides of the edge atomically; a self-follow
// or an already-present edge is a no-op, never an error.
type FollowerRepository interface {
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*user.User, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*user.User, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}
