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

// AboutRepository handles database operations for the singleton about
// page and its child objectives and affiliation links.
type AboutRepository struct {
	db *pgxpool.Pool
}

// NewAboutRepository creates a new about page repository
func NewAboutRepository(db *pgxpool.Pool) *AboutRepository {
	return &AboutRepository{
		db: db,
	}
}

// Get retrieves the about page with its objectives and affiliation links
func (r *AboutRepository) Get(ctx context.Context) (*models.AboutPage, error) {
	query := `
		SELECT id, main_heading, main_paragraph, mission, vision,
		       purpose_heading, purpose_paragraph, affiliations_heading,
		       affiliations_paragraph, contact_email, created_at, updated_at
		FROM about_pages
		ORDER BY id
		LIMIT 1
	`

	var page models.AboutPage
	err := r.db.QueryRow(ctx, query).Scan(
		&page.ID,
		&page.MainHeading,
		&page.MainParagraph,
		&page.Mission,
		&page.Vision,
		&page.PurposeHeading,
		&page.PurposeParagraph,
		&page.AffiliationsHeading,
		&page.AffiliationsParagraph,
		&page.ContactEmail,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAboutPageNotFound
		}
		return nil, fmt.Errorf("error retrieving about page: %w", err)
	}

	if page.Objectives, err = r.getObjectives(ctx, page.ID); err != nil {
		return nil, err
	}
	if page.AffiliationLinks, err = r.getAffiliationLinks(ctx, page.ID); err != nil {
		return nil, err
	}

	return &page, nil
}

func (r *AboutRepository) getObjectives(ctx context.Context, pageID int64) ([]*models.Objective, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, about_page_id, text, display_order
		FROM about_objectives
		WHERE about_page_id = $1
		ORDER BY display_order, id`, pageID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving objectives: %w", err)
	}
	defer rows.Close()

	var objectives []*models.Objective
	for rows.Next() {
		var o models.Objective
		if err := rows.Scan(&o.ID, &o.AboutPageID, &o.Text, &o.DisplayOrder); err != nil {
			return nil, err
		}
		objectives = append(objectives, &o)
	}

	return objectives, rows.Err()
}

func (r *AboutRepository) getAffiliationLinks(ctx context.Context, pageID int64) ([]*models.AffiliationLink, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, about_page_id, name, url, display_order
		FROM affiliation_links
		WHERE about_page_id = $1
		ORDER BY display_order, id`, pageID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving affiliation links: %w", err)
	}
	defer rows.Close()

	var links []*models.AffiliationLink
	for rows.Next() {
		var l models.AffiliationLink
		if err := rows.Scan(&l.ID, &l.AboutPageID, &l.Name, &l.URL, &l.DisplayOrder); err != nil {
			return nil, err
		}
		links = append(links, &l)
	}

	return links, rows.Err()
}

// Create inserts the about page. A second insert is rejected so the
// table stays a singleton.
func (r *AboutRepository) Create(ctx context.Context, page *models.AboutPage) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM about_pages)`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking about page existence: %w", err)
	}
	if exists {
		return apperrors.ErrSingletonExists
	}

	query := `
		INSERT INTO about_pages (main_heading, main_paragraph, mission, vision,
			purpose_heading, purpose_paragraph, affiliations_heading,
			affiliations_paragraph, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query,
		page.MainHeading, page.MainParagraph, page.Mission, page.Vision,
		page.PurposeHeading, page.PurposeParagraph, page.AffiliationsHeading,
		page.AffiliationsParagraph, page.ContactEmail,
	).Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating about page: %w", err)
	}

	if err := r.replaceChildren(ctx, page); err != nil {
		return err
	}

	return nil
}

// Update updates the about page and replaces its child records
func (r *AboutRepository) Update(ctx context.Context, page *models.AboutPage) error {
	query := `
		UPDATE about_pages
		SET main_heading = $1, main_paragraph = $2, mission = $3, vision = $4,
		    purpose_heading = $5, purpose_paragraph = $6,
		    affiliations_heading = $7, affiliations_paragraph = $8,
		    contact_email = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		page.MainHeading, page.MainParagraph, page.Mission, page.Vision,
		page.PurposeHeading, page.PurposeParagraph, page.AffiliationsHeading,
		page.AffiliationsParagraph, page.ContactEmail, page.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating about page: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAboutPageNotFound
	}

	return r.replaceChildren(ctx, page)
}

// replaceChildren rewrites the objectives and affiliation links for the
// page in a single transaction.
func (r *AboutRepository) replaceChildren(ctx context.Context, page *models.AboutPage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM about_objectives WHERE about_page_id = $1`, page.ID); err != nil {
		return fmt.Errorf("error clearing objectives: %w", err)
	}
	for i, o := range page.Objectives {
		o.AboutPageID = page.ID
		o.DisplayOrder = i
		err := tx.QueryRow(ctx, `
			INSERT INTO about_objectives (about_page_id, text, display_order)
			VALUES ($1, $2, $3)
			RETURNING id`,
			o.AboutPageID, o.Text, o.DisplayOrder).Scan(&o.ID)
		if err != nil {
			return fmt.Errorf("error inserting objective: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM affiliation_links WHERE about_page_id = $1`, page.ID); err != nil {
		return fmt.Errorf("error clearing affiliation links: %w", err)
	}
	for i, l := range page.AffiliationLinks {
		l.AboutPageID = page.ID
		l.DisplayOrder = i
		err := tx.QueryRow(ctx, `
			INSERT INTO affiliation_links (about_page_id, name, url, display_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			l.AboutPageID, l.Name, l.URL, l.DisplayOrder).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("error inserting affiliation link: %w", err)
		}
	}

	return tx.Commit(ctx)
}
