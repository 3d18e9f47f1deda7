package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jwalitptl/directory-web/internal/model"
)

const listingColumns = `
	id, created_at, slug, nombre, direccion, telefono, foto_url, especialidad,
	ciudad, is_verified, consultorio_id, views_count, rating`

func (r *listingRepository) GetBySlug(ctx context.Context, slug string) (*model.Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM directory_listings WHERE slug = $1`, listingColumns)

	var listing model.Listing
	if err := r.get(ctx, "directory_listings.get_by_slug", "listing", &listing, query, slug); err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

func (r *listingRepository) FindByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM directory_listings
		WHERE consultorio_id = $1
		ORDER BY created_at
		LIMIT 1
	`, listingColumns)

	var listing model.Listing
	if err := r.get(ctx, "directory_listings.find_by_clinic", "listing", &listing, query, clinicID); err != nil {
		return nil, fmt.Errorf("failed to find clinic listing: %w", err)
	}
	return &listing, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	query := `
		INSERT INTO directory_listings
			(nombre, slug, direccion, telefono, especialidad, ciudad, is_verified, consultorio_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	start := time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		listing.Name,
		listing.Slug,
		listing.Address,
		listing.Phone,
		listing.Specialty,
		listing.City,
		listing.IsVerified,
		listing.ClinicID,
	).Scan(&listing.ID, &listing.CreatedAt)
	r.metrics.ObserveQuery("directory_listings.insert", start, err)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *listingRepository) DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error) {
	query := `DELETE FROM directory_listings WHERE nombre = ANY($1) AND created_at > $2`

	n, err := r.exec(ctx, "directory_listings.delete_imported", query, pq.Array(names), since)
	if err != nil {
		return 0, fmt.Errorf("failed to delete listings: %w", err)
	}
	return n, nil
}
