package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jwalitptl/directory-web/internal/model"
)

const clinicColumns = `
	id, created_at, nombre, slug, direccion, telefono, correo,
	hora_apertura::text AS hora_apertura, hora_cierre::text AS hora_cierre,
	duracion_cita_minutos, color_tema, ruc, logo_url, tipo_consultorio`

func (r *clinicRepository) GetBySlug(ctx context.Context, slug string) (*model.Clinic, error) {
	query := fmt.Sprintf(`SELECT %s FROM consultorios WHERE slug = $1`, clinicColumns)

	var clinic model.Clinic
	if err := r.get(ctx, "consultorios.get_by_slug", "clinic", &clinic, query, slug); err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return &clinic, nil
}

func (r *clinicRepository) ListSlugs(ctx context.Context) ([]*model.SlugEntry, error) {
	query := `SELECT slug, created_at FROM consultorios WHERE slug IS NOT NULL ORDER BY created_at`

	entries := []*model.SlugEntry{}
	if err := r.selectRows(ctx, "consultorios.list_slugs", &entries, query); err != nil {
		return nil, fmt.Errorf("failed to list clinic slugs: %w", err)
	}
	return entries, nil
}

// Create inserts a clinic with only the columns the import knows about; the
// rest keep their table defaults.
func (r *clinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	query := `
		INSERT INTO consultorios (nombre, direccion, telefono, slug, tipo_consultorio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	start := time.Now()
	err := r.db.QueryRowxContext(ctx, query,
		clinic.Name,
		clinic.Address,
		clinic.Phone,
		clinic.Slug,
		clinic.Category,
	).Scan(&clinic.ID, &clinic.CreatedAt)
	r.metrics.ObserveQuery("consultorios.insert", start, err)
	if err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *clinicRepository) DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error) {
	query := `DELETE FROM consultorios WHERE nombre = ANY($1) AND created_at > $2`

	n, err := r.exec(ctx, "consultorios.delete_imported", query, pq.Array(names), since)
	if err != nil {
		return 0, fmt.Errorf("failed to delete clinics: %w", err)
	}
	return n, nil
}
