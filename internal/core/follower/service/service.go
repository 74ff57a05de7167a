package followerapp

import (
	"context"

	"rasaneh/internal/config"
	followerPort "rasaneh/internal/ports/follower"
	userPort "rasaneh/internal/ports/user"

	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
	}
}

// FollowUser دنبال کردن کاربر: self-follow is a logged no-op, not an error
func (s *FollowerService) FollowUser(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		config.Logger.Warn("⚠️ Cannot follow yourself", zap.String("userID", followerID))
		return nil
	}
	return s.FollowerRepository.Follow(ctx, followerID, followeeID)
}

// UnfollowUser لغو دنبال کردن: no-op when not currently following
func (s *FollowerService) UnfollowUser(ctx context.Context, followerID, followeeID string) error {
	return s.FollowerRepository.Unfollow(ctx, followerID, followeeID)
}

func (s *FollowerService) GetFollowersByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followerDTOs := make([]*userPort.UserDTO, 0, len(followers))
	for _, u := range followers {
		followerDTOs = append(followerDTOs, &userPort.UserDTO{
			ID:             u.ID,
			Username:       u.Username,
			ProfilePicture: u.ProfilePicture,
		})
	}

	return followerDTOs, nil
}

func (s *FollowerService) GetFollowingByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingDTOs := make([]*userPort.UserDTO, 0, len(following))
	for _, u := range following {
		followingDTOs = append(followingDTOs, &userPort.UserDTO{
			ID:             u.ID,
			Username:       u.Username,
			ProfilePicture: u.ProfilePicture,
		})
	}

	return followingDTOs, nil
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.FollowerRepository.IsFollowing(ctx, followerID, followeeID)
}
