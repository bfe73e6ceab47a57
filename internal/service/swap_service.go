package service

import (
	"context"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

// SwapService coordinates the swap request lifecycle. User ids are taken at
// face value: nothing checks that they exist or that the two sides differ.
type SwapService interface {
	Create(ctx context.Context, fromUserID, toUserID int64, message *string) (*domain.SwapRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SwapRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) (*domain.SwapRequest, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type swapService struct {
	requests repository.SwapRequestRepository
}

func NewSwapService(requests repository.SwapRequestRepository) SwapService {
	return &swapService{requests: requests}
}

// Create stores a new request. Status always starts as pending, whatever
// the caller supplied.
func (s *swapService) Create(ctx context.Context, fromUserID, toUserID int64, message *string) (*domain.SwapRequest, error) {
	request := &domain.SwapRequest{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     domain.SwapStatusPending,
		Message:    message,
	}
	if _, err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *swapService) ListByUser(ctx context.Context, userID int64) ([]domain.SwapRequest, error) {
	return s.requests.ListByUser(ctx, userID)
}

// UpdateStatus overwrites the status field. Any string is accepted; the
// three known values are not enforced here.
func (s *swapService) UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) (*domain.SwapRequest, error) {
	return s.requests.UpdateStatus(ctx, id, status)
}

func (s *swapService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.requests.Delete(ctx, id)
}
