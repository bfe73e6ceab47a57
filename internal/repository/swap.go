package repository

import (
	"context"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
)

// SwapRequestRepository defines persistence operations for SwapRequest
// entities. ListByUser matches requests on either side of the exchange,
// in insertion order. UpdateStatus overwrites the status field without
// checking it against the known values.
type SwapRequestRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, request *domain.SwapRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SwapRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) (*domain.SwapRequest, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
