package userapp

import (
	"context"

	"rasaneh/internal/config"
	userEntity "rasaneh/internal/core/user"
	userPort "rasaneh/internal/ports/user"

	"go.uber.org/zap"
)

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
}

func NewUserService(repo userPort.UserRepository) *UserService {
	return &UserService{
		UserRepository: repo,
	}
}

// RegisterUser ثبت‌نام کاربر جدید
//
// The user ID comes from the caller; a duplicate ID fails with
// userPort.ErrUserExists and never overwrites the registered user.
func (s *UserService) RegisterUser(ctx context.Context, userID, username, profilePicture string) (*userPort.UserDTO, error) {
	u := &userEntity.User{
		ID:             userID,
		Username:       username,
		ProfilePicture: profilePicture,
	}

	created, err := s.UserRepository.Create(u)
	if err != nil {
		config.Logger.Warn("⚠️ Could not register user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	return toDTO(created), nil
}

// GetUser بازیابی کاربر با شناسه
func (s *UserService) GetUser(ctx context.Context, userID string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}
