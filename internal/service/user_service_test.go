package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tusarkanta004/skill-swap-platform/internal/repository/memory"
)

func TestUserService_RegisterForcesZeroRating(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	user, err := svc.Register(ctx, RegisterInput{
		Username: "newbie",
		Password: "secret",
		Name:     "New Bie",
		Email:    "newbie@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 0, user.Rating)
	require.True(t, user.IsPublic, "visibility defaults to public")
}

func TestUserService_RegisterRespectsVisibilityFlag(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	hidden := false
	user, err := svc.Register(ctx, RegisterInput{
		Username: "shy",
		Password: "secret",
		Name:     "Shy Person",
		Email:    "shy@example.com",
		IsPublic: &hidden,
	})
	require.NoError(t, err)
	require.False(t, user.IsPublic)

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Empty(t, public)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	_, err := svc.Register(ctx, RegisterInput{
		Username: "first",
		Password: "secret",
		Name:     "First",
		Email:    "taken@example.com",
	})
	require.NoError(t, err)

	// same email with a different username is still a conflict; duplicate
	// usernames alone are allowed
	_, err = svc.Register(ctx, RegisterInput{
		Username: "second",
		Password: "secret",
		Name:     "Second",
		Email:    "taken@example.com",
	})
	require.True(t, errors.Is(err, ErrUserAlreadyExists))

	_, err = svc.Register(ctx, RegisterInput{
		Username: "first",
		Password: "secret",
		Name:     "First Again",
		Email:    "other@example.com",
	})
	require.NoError(t, err)
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	registered, err := svc.Register(ctx, RegisterInput{
		Username: "sarah",
		Password: "password123",
		Name:     "Sarah",
		Email:    "sarah@example.com",
	})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "sarah@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "sarah@example.com", "wrong")
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "password123")
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}
