package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

const createSwapRequestsTable = `
CREATE TABLE IF NOT EXISTS swap_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	from_user_id INTEGER NOT NULL,
	to_user_id INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	message TEXT NULL
);
`

type SwapRequestRepository struct {
	db *sql.DB
}

func NewSwapRequestRepository(db *sql.DB) repository.SwapRequestRepository {
	return &SwapRequestRepository{db: db}
}

func (r *SwapRequestRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSwapRequestsTable); err != nil {
		return fmt.Errorf("create swap_requests table: %w", err)
	}
	return nil
}

func (r *SwapRequestRepository) Create(ctx context.Context, request *domain.SwapRequest) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO swap_requests (from_user_id, to_user_id, status, message)
VALUES (?, ?, ?, ?)`,
		request.FromUserID,
		request.ToUserID,
		string(request.Status),
		request.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("insert swap request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("swap request last insert id: %w", err)
	}
	request.ID = id
	return id, nil
}

const selectSwapColumns = `
SELECT id, from_user_id, to_user_id, status, message
FROM swap_requests`

func (r *SwapRequestRepository) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	row := r.db.QueryRowContext(ctx, selectSwapColumns+` WHERE id = ?`, id)
	return scanSwapRequest(row)
}

func (r *SwapRequestRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SwapRequest, error) {
	rows, err := r.db.QueryContext(ctx, selectSwapColumns+` WHERE from_user_id = ? OR to_user_id = ? ORDER BY id`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("query swap requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.SwapRequest{}
	for rows.Next() {
		request, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swap requests: %w", err)
	}
	return requests, nil
}

func (r *SwapRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) (*domain.SwapRequest, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE swap_requests SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return nil, fmt.Errorf("update swap request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("swap request rows affected: %w", err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *SwapRequestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM swap_requests WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete swap request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("swap request rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanSwapRequest(row interface {
	Scan(dest ...any) error
}) (*domain.SwapRequest, error) {
	var (
		request domain.SwapRequest
		status  string
	)
	if err := row.Scan(
		&request.ID,
		&request.FromUserID,
		&request.ToUserID,
		&status,
		&request.Message,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan swap request: %w", err)
	}
	request.Status = domain.SwapStatus(status)
	return &request, nil
}
