package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering with an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// RegisterInput carries the accepted registration fields. Rating is absent
// on purpose: it is always forced to zero for new users.
type RegisterInput struct {
	Username      string
	Password      string
	Name          string
	Email         string
	Location      *string
	Avatar        *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *string
	IsPublic      *bool
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListPublic(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates a new user. Only the email is checked for duplicates;
// the username is not, matching the published contract. Visibility defaults
// to public when the caller leaves it unset.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, errors.New("email is required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	user := &domain.User{
		Username:      input.Username,
		Password:      input.Password,
		Name:          input.Name,
		Email:         email,
		Location:      input.Location,
		Avatar:        input.Avatar,
		SkillsOffered: input.SkillsOffered,
		SkillsWanted:  input.SkillsWanted,
		Availability:  input.Availability,
		Rating:        0,
		IsPublic:      isPublic,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate matches the stored password byte for byte. Passwords are
// kept in plain text; there is no hashing anywhere in the system.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) ListPublic(ctx context.Context) ([]domain.User, error) {
	return s.users.ListPublic(ctx)
}
