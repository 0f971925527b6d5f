package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

const eventColumns = `id, title, summary, description, event_start, event_end,
	location, event_url, organizer, image, is_published, created_at, updated_at`

// An event is upcoming until the moment it starts, inclusive of the
// start instant itself; it becomes past only once its end has gone by.
// An open-ended running event is therefore neither.
const (
	upcomingCondition = `event_start >= $1`
	pastCondition     = `event_end IS NOT NULL AND event_end < $1`
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Summary,
		&e.Description,
		&e.EventStart,
		&e.EventEnd,
		&e.Location,
		&e.EventURL,
		&e.Organizer,
		&e.Image,
		&e.IsPublished,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, summary, description, event_start, event_end,
			location, event_url, organizer, image, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Summary, event.Description, event.EventStart,
		event.EventEnd, event.Location, event.EventURL, event.Organizer,
		event.Image, event.IsPublished,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := scanEvent(r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAll retrieves every event, newest start first. Used by the admin
// surface, so unpublished events are included.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY event_start DESC, id`)
}

// GetUpcoming retrieves published events starting at or after now,
// soonest first
func (r *EventRepository) GetUpcoming(ctx context.Context, now time.Time) ([]*models.Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE is_published AND `+upcomingCondition+`
		 ORDER BY event_start, id`, now)
}

// GetPast retrieves published events that have ended, most recent first
func (r *EventRepository) GetPast(ctx context.Context, now time.Time) ([]*models.Event, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE is_published AND `+pastCondition+`
		 ORDER BY event_end DESC, id`, now)
}

// GetUpcomingPage retrieves a page of published upcoming events with
// the total count
func (r *EventRepository) GetUpcomingPage(ctx context.Context, now time.Time, limit, offset int) ([]*models.Event, int64, error) {
	return r.getPage(ctx,
		`SELECT `+eventColumns+`, COUNT(*) OVER() AS total_count FROM events
		 WHERE is_published AND `+upcomingCondition+`
		 ORDER BY event_start, id
		 LIMIT $2 OFFSET $3`,
		`SELECT COUNT(*) FROM events WHERE is_published AND `+upcomingCondition,
		now, limit, offset)
}

// GetPastPage retrieves a page of published past events with the total
// count
func (r *EventRepository) GetPastPage(ctx context.Context, now time.Time, limit, offset int) ([]*models.Event, int64, error) {
	return r.getPage(ctx,
		`SELECT `+eventColumns+`, COUNT(*) OVER() AS total_count FROM events
		 WHERE is_published AND `+pastCondition+`
		 ORDER BY event_end DESC, id
		 LIMIT $2 OFFSET $3`,
		`SELECT COUNT(*) FROM events WHERE is_published AND `+pastCondition,
		now, limit, offset)
}

func (r *EventRepository) getPage(ctx context.Context, pageSQL, countSQL string, now time.Time, limit, offset int) ([]*models.Event, int64, error) {
	rows, err := r.db.Query(ctx, pageSQL, now, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []*models.Event
	var totalCount int64
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Summary, &e.Description, &e.EventStart,
			&e.EventEnd, &e.Location, &e.EventURL, &e.Organizer, &e.Image,
			&e.IsPublished, &e.CreatedAt, &e.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, err
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// The windowed count is lost when the page is past the end, so
	// re-derive the real total for an empty page.
	if events == nil {
		if err := r.db.QueryRow(ctx, countSQL, now).Scan(&totalCount); err != nil {
			return nil, 0, fmt.Errorf("error counting events: %w", err)
		}
	}

	return events, totalCount, nil
}

// Update updates an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, summary = $2, description = $3, event_start = $4,
		    event_end = $5, location = $6, event_url = $7, organizer = $8,
		    image = $9, is_published = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.Title, event.Summary, event.Description, event.EventStart,
		event.EventEnd, event.Location, event.EventURL, event.Organizer,
		event.Image, event.IsPublished, event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
