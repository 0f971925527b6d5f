package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

// JoinRequestRepository handles database operations for membership
// applications
type JoinRequestRepository struct {
	db *pgxpool.Pool
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *pgxpool.Pool) *JoinRequestRepository {
	return &JoinRequestRepository{
		db: db,
	}
}

// Create stores a submitted join request
func (r *JoinRequestRepository) Create(ctx context.Context, request *models.JoinRequest) error {
	query := `
		INSERT INTO join_requests (full_name, email, phone, profession, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		request.FullName, request.Email, request.Phone,
		request.Profession, request.Message,
	).Scan(&request.ID, &request.SubmittedAt)
	if err != nil {
		return fmt.Errorf("error creating join request: %w", err)
	}

	return nil
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(ctx context.Context, id int64) (*models.JoinRequest, error) {
	var jr models.JoinRequest
	err := r.db.QueryRow(ctx, `
		SELECT id, full_name, email, phone, profession, message, submitted_at
		FROM join_requests
		WHERE id = $1`, id).Scan(
		&jr.ID, &jr.FullName, &jr.Email, &jr.Phone,
		&jr.Profession, &jr.Message, &jr.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("join request not found")
		}
		return nil, fmt.Errorf("error retrieving join request: %w", err)
	}

	return &jr, nil
}

// GetPage retrieves a page of join requests, newest first, with the
// total count
func (r *JoinRequestRepository) GetPage(ctx context.Context, limit, offset int) ([]*models.JoinRequest, int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, email, phone, profession, message, submitted_at,
		       COUNT(*) OVER() AS total_count
		FROM join_requests
		ORDER BY submitted_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []*models.JoinRequest
	var totalCount int64
	for rows.Next() {
		var jr models.JoinRequest
		if err := rows.Scan(
			&jr.ID, &jr.FullName, &jr.Email, &jr.Phone,
			&jr.Profession, &jr.Message, &jr.SubmittedAt, &totalCount,
		); err != nil {
			return nil, 0, err
		}
		requests = append(requests, &jr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if requests == nil {
		err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM join_requests`).Scan(&totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("error counting join requests: %w", err)
		}
	}

	return requests, totalCount, nil
}

// Delete deletes a join request by ID
func (r *JoinRequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM join_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting join request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("join request not found")
	}

	return nil
}
