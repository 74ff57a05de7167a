package user

import (
	"errors"

	"rasaneh/internal/core/user"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByID(id string) (*user.User, error)
}

// DTOها برای UseCase
type UserDTO struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
