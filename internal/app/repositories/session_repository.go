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

const sessionColumns = `id, title, tagline, description, session_date, start_time,
	end_time, venue, google_photos_link, guest_speakers_info, is_published,
	created_at, updated_at`

// SessionRepository handles database operations for sessions, their
// speaker links and their images
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func scanSession(row pgx.Row) (*models.Session, error) {
	var s models.Session
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Tagline,
		&s.Description,
		&s.SessionDate,
		&s.StartTime,
		&s.EndTime,
		&s.Venue,
		&s.GooglePhotosLink,
		&s.GuestSpeakers,
		&s.IsPublished,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new session and links its speakers
func (r *SessionRepository) Create(ctx context.Context, session *models.Session, speakerIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (title, tagline, description, session_date,
			start_time, end_time, venue, google_photos_link,
			guest_speakers_info, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		session.Title, session.Tagline, session.Description, session.SessionDate,
		session.StartTime, session.EndTime, session.Venue,
		session.GooglePhotosLink, session.GuestSpeakers, session.IsPublished,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}

	if err := r.setSpeakers(ctx, tx, session.ID, speakerIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a session with its speakers and images
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session, err := scanSession(r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	if err := r.loadRelations(ctx, []*models.Session{session}); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSessions retrieves sessions, most recent session date first, with
// speakers and images attached. When publishedOnly is set, unpublished
// sessions are skipped.
func (r *SessionRepository) GetSessions(ctx context.Context, publishedOnly bool) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions`
	if publishedOnly {
		query += ` WHERE is_published`
	}
	query += ` ORDER BY session_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

// loadRelations attaches speakers and images to the given sessions
func (r *SessionRepository) loadRelations(ctx context.Context, sessions []*models.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Session, len(sessions))
	ids := make([]int64, 0, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	speakerRows, err := r.db.Query(ctx, `
		SELECT ss.session_id, l.id, l.full_name, l.position, l.category, l.bio,
		       l.photo, l.email, l.linkedin_url, l.start_date, l.end_date,
		       l.created_at, l.updated_at
		FROM session_speakers ss
		JOIN leaders l ON l.id = ss.leader_id
		WHERE ss.session_id = ANY($1)
		ORDER BY l.full_name`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving session speakers: %w", err)
	}
	defer speakerRows.Close()

	for speakerRows.Next() {
		var sessionID int64
		var l models.Leader
		if err := speakerRows.Scan(
			&sessionID, &l.ID, &l.FullName, &l.Position, &l.Category, &l.Bio,
			&l.Photo, &l.Email, &l.LinkedinURL, &l.StartDate, &l.EndDate,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return err
		}
		if s, ok := byID[sessionID]; ok {
			s.Speakers = append(s.Speakers, &l)
		}
	}
	if err := speakerRows.Err(); err != nil {
		return err
	}

	imageRows, err := r.db.Query(ctx, `
		SELECT id, session_id, image, caption, display_order, created_at
		FROM session_images
		WHERE session_id = ANY($1)
		ORDER BY display_order, id`, ids)
	if err != nil {
		return fmt.Errorf("error retrieving session images: %w", err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var img models.SessionImage
		if err := imageRows.Scan(
			&img.ID, &img.SessionID, &img.Image, &img.Caption,
			&img.DisplayOrder, &img.CreatedAt,
		); err != nil {
			return err
		}
		if s, ok := byID[img.SessionID]; ok {
			s.Images = append(s.Images, &img)
		}
	}

	return imageRows.Err()
}

// setSpeakers replaces the speaker links for a session
func (r *SessionRepository) setSpeakers(ctx context.Context, tx pgx.Tx, sessionID int64, speakerIDs []int64) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM session_speakers WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("error clearing session speakers: %w", err)
	}

	for _, leaderID := range speakerIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO session_speakers (session_id, leader_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, sessionID, leaderID); err != nil {
			return fmt.Errorf("error linking session speaker: %w", err)
		}
	}

	return nil
}

// Update updates an existing session and replaces its speaker links
func (r *SessionRepository) Update(ctx context.Context, session *models.Session, speakerIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE sessions
		SET title = $1, tagline = $2, description = $3, session_date = $4,
		    start_time = $5, end_time = $6, venue = $7,
		    google_photos_link = $8, guest_speakers_info = $9,
		    is_published = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
	`

	cmdTag, err := tx.Exec(ctx, query,
		session.Title, session.Tagline, session.Description, session.SessionDate,
		session.StartTime, session.EndTime, session.Venue,
		session.GooglePhotosLink, session.GuestSpeakers, session.IsPublished,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	if err := r.setSpeakers(ctx, tx, session.ID, speakerIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete deletes a session. Speaker links and images are removed by
// the cascade.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}

	return nil
}

// AddImage adds an image to a session
func (r *SessionRepository) AddImage(ctx context.Context, image *models.SessionImage) error {
	query := `
		INSERT INTO session_images (session_id, image, caption, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		image.SessionID, image.Image, image.Caption, image.DisplayOrder,
	).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return fmt.Errorf("error adding session image: %w", err)
	}

	return nil
}

// DeleteImage deletes a session image by ID
func (r *SessionRepository) DeleteImage(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM session_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session image: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("session image not found")
	}

	return nil
}

// Search finds published sessions whose title, tagline or description
// matches the term
func (r *SessionRepository) Search(ctx context.Context, term string) ([]*models.Session, error) {
	pattern := "%" + term + "%"

	query := squirrel.Select(
		"id", "title", "tagline", "description", "session_date", "start_time",
		"end_time", "venue", "google_photos_link", "guest_speakers_info",
		"is_published", "created_at", "updated_at").
		From("sessions").
		Where(squirrel.And{
			squirrel.Eq{"is_published": true},
			squirrel.Or{
				squirrel.ILike{"title": pattern},
				squirrel.ILike{"description": pattern},
				squirrel.ILike{"venue": pattern},
				squirrel.ILike{"guest_speakers_info": pattern},
			},
		}).
		OrderBy("session_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building session search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
