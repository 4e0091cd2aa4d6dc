package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tourismportal/internal/models"
)

const placeColumns = `
	p.id, p.name, p.place_name, p.address, p.email_address, p.contact_no, p.description,
	p.history, p.entrance_fee, p.pricing, p.activities,
	p.image_link, p.map_iframe, p.virtual_iframe,
	p.status, p.remarks, p.created_by, p.reviewed_by, p.reviewed_at, p.created_at, p.updated_at`

func scanPlace(row pgx.Row, p *models.Place) error {
	return row.Scan(
		&p.ID, &p.Name, &p.PlaceName, &p.Address, &p.EmailAddress, &p.ContactNo, &p.Description,
		&p.History, &p.EntranceFee, &p.Pricing, &p.Activities,
		&p.ImageLink, &p.MapIframe, &p.VirtualIframe,
		&p.Status, &p.Remarks, &p.CreatedBy, &p.ReviewedBy, &p.ReviewedAt, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreatePlace inserts a new place submission. The status is always forced to
// Pending regardless of what the client sent.
func (d *DB) CreatePlace(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (name, place_name, address, email_address, contact_no, description,
			history, entrance_fee, pricing, activities, image_link, map_iframe, virtual_iframe, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, status, remarks, created_at, updated_at
	`
	return d.Pool.QueryRow(ctx, query,
		place.Name,
		place.PlaceName,
		place.Address,
		place.EmailAddress,
		place.ContactNo,
		place.Description,
		place.History,
		place.EntranceFee,
		place.Pricing,
		place.Activities,
		place.ImageLink,
		place.MapIframe,
		place.VirtualIframe,
		place.CreatedBy,
	).Scan(&place.ID, &place.Status, &place.Remarks, &place.CreatedAt, &place.UpdatedAt)
}

// GetPlaceByID retrieves a place with the submitter's account email for the
// admin review view.
func (d *DB) GetPlaceByID(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	query := `
		SELECT` + placeColumns + `, COALESCE(u.email, '')
		FROM places p
		LEFT JOIN users u ON u.id = p.created_by
		WHERE p.id = $1
	`
	var place models.Place
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&place.ID, &place.Name, &place.PlaceName, &place.Address, &place.EmailAddress, &place.ContactNo, &place.Description,
		&place.History, &place.EntranceFee, &place.Pricing, &place.Activities,
		&place.ImageLink, &place.MapIframe, &place.VirtualIframe,
		&place.Status, &place.Remarks, &place.CreatedBy, &place.ReviewedBy, &place.ReviewedAt, &place.CreatedAt, &place.UpdatedAt,
		&place.SubmitterEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// GetPlacesByStatus returns all places with the given moderation status,
// oldest submission first.
func (d *DB) GetPlacesByStatus(ctx context.Context, status string) ([]models.Place, error) {
	query := `
		SELECT` + placeColumns + `
		FROM places p
		WHERE p.status = $1
		ORDER BY p.created_at ASC
	`
	rows, err := d.Pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlaces(rows)
}

// GetPendingPlaces returns all places awaiting review.
func (d *DB) GetPendingPlaces(ctx context.Context) ([]models.Place, error) {
	return d.GetPlacesByStatus(ctx, models.StatusPending)
}

// GetApprovedPlaces returns all publicly visible places.
func (d *DB) GetApprovedPlaces(ctx context.Context) ([]models.Place, error) {
	return d.GetPlacesByStatus(ctx, models.StatusApproved)
}

// GetPlacesByUser returns all submissions owned by the given user, newest first.
func (d *DB) GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]models.Place, error) {
	query := `
		SELECT` + placeColumns + `
		FROM places p
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC
	`
	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlaces(rows)
}

// GetAllPlaces returns every place regardless of status, newest first.
func (d *DB) GetAllPlaces(ctx context.Context) ([]models.Place, error) {
	query := `
		SELECT` + placeColumns + `
		FROM places p
		ORDER BY p.created_at DESC
	`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlaces(rows)
}

// UpdatePlace applies an owner's resubmission. Every edit resets the place to
// Pending and clears the previous review so it goes back through moderation.
func (d *DB) UpdatePlace(ctx context.Context, place *models.Place, ownerID uuid.UUID) error {
	query := `
		UPDATE places
		SET name = $1, place_name = $2, address = $3, email_address = $4, contact_no = $5,
			description = $6, history = $7, entrance_fee = $8, pricing = $9, activities = $10,
			image_link = $11, map_iframe = $12, virtual_iframe = $13,
			status = 'Pending', remarks = '', reviewed_by = NULL, reviewed_at = NULL, updated_at = NOW()
		WHERE id = $14 AND created_by = $15
		RETURNING status, remarks, updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		place.Name,
		place.PlaceName,
		place.Address,
		place.EmailAddress,
		place.ContactNo,
		place.Description,
		place.History,
		place.EntranceFee,
		place.Pricing,
		place.Activities,
		place.ImageLink,
		place.MapIframe,
		place.VirtualIframe,
		place.ID,
		ownerID,
	).Scan(&place.Status, &place.Remarks, &place.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPlaceNotFound
	}
	return err
}

// SetPlaceStatus records a moderation decision. Only Pending places can be
// decided; a second decision on the same place returns ErrPlaceNotPending.
func (d *DB) SetPlaceStatus(ctx context.Context, id uuid.UUID, status, remarks string, reviewerID uuid.UUID) error {
	now := time.Now()
	result, err := d.Pool.Exec(ctx, `
		UPDATE places
		SET status = $1, remarks = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
	`, status, remarks, reviewerID, now, id, models.StatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := d.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM places WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrPlaceNotPending
		}
		return ErrPlaceNotFound
	}
	return nil
}

// GetImageLinks returns every image link currently referenced by a place.
// Used by the image sweeper to find orphaned uploads.
func (d *DB) GetImageLinks(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT image_link FROM places WHERE image_link <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []string
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// CountPlacesByStatus returns the number of places per moderation status.
// Used by the Prometheus collector.
func (d *DB) CountPlacesByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `SELECT status, COUNT(*) FROM places GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func collectPlaces(rows pgx.Rows) ([]models.Place, error) {
	var places []models.Place
	for rows.Next() {
		var p models.Place
		if err := scanPlace(rows, &p); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}
