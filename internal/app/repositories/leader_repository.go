package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

const leaderColumns = `id, full_name, position, category, bio, photo, email,
	linkedin_url, start_date, end_date, created_at, updated_at`

// LeaderRepository handles database operations for leaders
type LeaderRepository struct {
	db *pgxpool.Pool
}

// NewLeaderRepository creates a new leader repository
func NewLeaderRepository(db *pgxpool.Pool) *LeaderRepository {
	return &LeaderRepository{
		db: db,
	}
}

func scanLeader(row pgx.Row) (*models.Leader, error) {
	var l models.Leader
	err := row.Scan(
		&l.ID,
		&l.FullName,
		&l.Position,
		&l.Category,
		&l.Bio,
		&l.Photo,
		&l.Email,
		&l.LinkedinURL,
		&l.StartDate,
		&l.EndDate,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeaderRepository) queryLeaders(ctx context.Context, sql string, args ...interface{}) ([]*models.Leader, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaders []*models.Leader
	for rows.Next() {
		l, err := scanLeader(rows)
		if err != nil {
			return nil, err
		}
		leaders = append(leaders, l)
	}

	return leaders, rows.Err()
}

// Create creates a new leader
func (r *LeaderRepository) Create(ctx context.Context, leader *models.Leader) error {
	query := `
		INSERT INTO leaders (full_name, position, category, bio, photo, email,
			linkedin_url, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		leader.FullName, leader.Position, leader.Category, leader.Bio,
		leader.Photo, leader.Email, leader.LinkedinURL,
		leader.StartDate, leader.EndDate,
	).Scan(&leader.ID, &leader.CreatedAt, &leader.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating leader: %w", err)
	}

	return nil
}

// GetByID retrieves a leader by ID
func (r *LeaderRepository) GetByID(ctx context.Context, id int64) (*models.Leader, error) {
	leader, err := scanLeader(r.db.QueryRow(ctx,
		`SELECT `+leaderColumns+` FROM leaders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("error retrieving leader: %w", err)
	}

	return leader, nil
}

// GetAll retrieves all leaders ordered by category then start date,
// newest terms first
func (r *LeaderRepository) GetAll(ctx context.Context) ([]*models.Leader, error) {
	return r.queryLeaders(ctx,
		`SELECT `+leaderColumns+` FROM leaders ORDER BY category, start_date DESC, id`)
}

// GetByCategory retrieves all leaders of a category
func (r *LeaderRepository) GetByCategory(ctx context.Context, category models.LeaderCategory) ([]*models.Leader, error) {
	return r.queryLeaders(ctx,
		`SELECT `+leaderColumns+` FROM leaders WHERE category = $1 ORDER BY start_date DESC, id`,
		category)
}

// GetByIDs retrieves leaders matching the given IDs
func (r *LeaderRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Leader, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.queryLeaders(ctx,
		`SELECT `+leaderColumns+` FROM leaders WHERE id = ANY($1) ORDER BY full_name`, ids)
}

// Update updates an existing leader
func (r *LeaderRepository) Update(ctx context.Context, leader *models.Leader) error {
	query := `
		UPDATE leaders
		SET full_name = $1, position = $2, category = $3, bio = $4, photo = $5,
		    email = $6, linkedin_url = $7, start_date = $8, end_date = $9,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		leader.FullName, leader.Position, leader.Category, leader.Bio,
		leader.Photo, leader.Email, leader.LinkedinURL,
		leader.StartDate, leader.EndDate, leader.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating leader: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLeaderNotFound
	}

	return nil
}

// Delete deletes a leader by ID. Session speaker links are removed by
// the cascade on session_speakers.
func (r *LeaderRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leaders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting leader: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLeaderNotFound
	}

	return nil
}

// Search finds leaders whose name or position matches the term
func (r *LeaderRepository) Search(ctx context.Context, term string) ([]*models.Leader, error) {
	pattern := "%" + term + "%"

	query := squirrel.Select(
		"id", "full_name", "position", "category", "bio", "photo", "email",
		"linkedin_url", "start_date", "end_date", "created_at", "updated_at").
		From("leaders").
		Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"bio": pattern},
			squirrel.ILike{"position": pattern},
		}).
		OrderBy("full_name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building leader search query: %w", err)
	}

	return r.queryLeaders(ctx, sql, args...)
}
