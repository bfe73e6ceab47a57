package memory

import (
	"context"
	"sync"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

// SwapRequestRepository keeps swap requests in process memory with its own
// id counter, independent from the user counter.
type SwapRequestRepository struct {
	mu       sync.RWMutex
	requests map[int64]*domain.SwapRequest
	order    []int64
	nextID   int64
}

func NewSwapRequestRepository() repository.SwapRequestRepository {
	return &SwapRequestRepository{
		requests: make(map[int64]*domain.SwapRequest),
		nextID:   1,
	}
}

func (r *SwapRequestRepository) Init(ctx context.Context) error {
	return nil
}

func (r *SwapRequestRepository) Create(ctx context.Context, request *domain.SwapRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := *request
	stored.ID = id
	r.requests[id] = &stored
	r.order = append(r.order, id)

	request.ID = id
	return id, nil
}

func (r *SwapRequestRepository) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *SwapRequestRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SwapRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.SwapRequest, 0)
	for _, id := range r.order {
		request := r.requests[id]
		if request.FromUserID == userID || request.ToUserID == userID {
			matched = append(matched, *request)
		}
	}
	return matched, nil
}

func (r *SwapRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) (*domain.SwapRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	request.Status = status
	copied := *request
	return &copied, nil
}

func (r *SwapRequestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[id]; !ok {
		return false, nil
	}
	delete(r.requests, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
