package repository

import (
	"context"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
)

// UserRepository defines persistence operations for User entities.
//
// Create assigns the next sequential id and stores the entity verbatim;
// defaulting rules (rating, visibility) belong to the service layer.
// Uniqueness of username/email is likewise not enforced here.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListPublic(ctx context.Context) ([]domain.User, error)
}
