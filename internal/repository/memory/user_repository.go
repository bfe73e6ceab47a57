package memory

import (
	"context"
	"sync"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

// UserRepository keeps users in process memory, keyed by id. Ids come from
// a monotonic counter starting at 1 and scans run in insertion order. The
// gin server handles requests concurrently, so access is mutex-guarded.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	order  []int64
	nextID int64
}

func NewUserRepository() repository.UserRepository {
	return &UserRepository{
		users:  make(map[int64]*domain.User),
		nextID: 1,
	}
}

func (r *UserRepository) Init(ctx context.Context) error {
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := *user
	stored.ID = id
	r.users[id] = &stored
	r.order = append(r.order, id)

	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *UserRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if user := r.users[id]; match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) ListPublic(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	public := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		if user := r.users[id]; user.IsPublic {
			public = append(public, *user)
		}
	}
	return public, nil
}
