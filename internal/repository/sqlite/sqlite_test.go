package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

func openTestRepos(t *testing.T) (repository.UserRepository, repository.SwapRequestRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	users := NewUserRepository(db)
	swaps := NewSwapRequestRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, swaps.Init(ctx))
	return users, swaps
}

func TestUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	users, _ := openTestRepos(t)

	location := "Austin, TX"
	created := &domain.User{
		Username:      "michael_torres",
		Password:      "password123",
		Name:          "Michael Torres",
		Email:         "michael@example.com",
		Location:      &location,
		SkillsOffered: []string{"JavaScript", "Python"},
		SkillsWanted:  []string{"SEO"},
		Rating:        42,
		IsPublic:      true,
	}
	id, err := users.Create(ctx, created)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	stored, err := users.GetByEmail(ctx, "michael@example.com")
	require.NoError(t, err)
	require.Equal(t, created.Username, stored.Username)
	require.Equal(t, created.Password, stored.Password)
	require.Equal(t, []string{"JavaScript", "Python"}, stored.SkillsOffered)
	require.Equal(t, []string{"SEO"}, stored.SkillsWanted)
	require.NotNil(t, stored.Location)
	require.Equal(t, location, *stored.Location)
	require.Nil(t, stored.Avatar)
	require.Equal(t, 42, stored.Rating)

	_, err = users.GetByID(ctx, 999)
	require.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUserRepository_ListPublic(t *testing.T) {
	ctx := context.Background()
	users, _ := openTestRepos(t)

	_, err := users.Create(ctx, &domain.User{Username: "open", Email: "open@example.com", IsPublic: true})
	require.NoError(t, err)
	_, err = users.Create(ctx, &domain.User{Username: "hidden", Email: "hidden@example.com", IsPublic: false})
	require.NoError(t, err)

	public, err := users.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "open", public[0].Username)
}

func TestSwapRequestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	_, swaps := openTestRepos(t)

	message := "let's trade"
	request := &domain.SwapRequest{FromUserID: 1, ToUserID: 2, Status: domain.SwapStatusPending, Message: &message}
	id, err := swaps.Create(ctx, request)
	require.NoError(t, err)

	byUser, err := swaps.ListByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	require.NotNil(t, byUser[0].Message)
	require.Equal(t, message, *byUser[0].Message)

	updated, err := swaps.UpdateStatus(ctx, id, domain.SwapStatusAccepted)
	require.NoError(t, err)
	require.Equal(t, domain.SwapStatusAccepted, updated.Status)

	_, err = swaps.UpdateStatus(ctx, 999, domain.SwapStatusAccepted)
	require.True(t, errors.Is(err, repository.ErrNotFound))

	deleted, err := swaps.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = swaps.Delete(ctx, id)
	require.NoError(t, err)
	require.False(t, deleted)
}
