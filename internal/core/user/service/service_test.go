package userapp

import (
	"context"
	"os"
	"testing"

	"rasaneh/internal/adapters/memory"
	"rasaneh/internal/config"
	userPort "rasaneh/internal/ports/user"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newService() *UserService {
	dir := memory.NewDirectory()
	return NewUserService(memory.NewUserRepositoryMemory(dir))
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	u, err := svc.RegisterUser(ctx, "1", "Alice", "alice.jpg")
	require.NoError(t, err)
	require.Equal(t, "1", u.ID)
	require.Equal(t, "Alice", u.Username)
	require.Equal(t, "alice.jpg", u.ProfilePicture)
}

func TestRegisterUser_DuplicateIDFails(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.RegisterUser(ctx, "1", "Alice", "")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "1", "Impostor", "")
	require.ErrorIs(t, err, userPort.ErrUserExists)

	// first registration wins
	u, err := svc.GetUser(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.GetUser(ctx, "missing")
	require.ErrorIs(t, err, userPort.ErrUserNotFound)
}
