package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/directory-web/internal/model"
)

const profileColumns = `
	p.id, p.created_at, p.nombre_completo, p.rol, p.email, p.especialidad,
	p.especialidad_id, p.consultorio_id, p.numero_resolucion, p.telefono,
	p.foto_url, p.slug, e.nombre AS especialidad_nombre`

func (r *profileRepository) ListByClinic(ctx context.Context, clinicID uuid.UUID, role string) ([]*model.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM perfiles p
		LEFT JOIN especialidades e ON e.id = p.especialidad_id
		WHERE p.consultorio_id = $1 AND p.rol = $2
		ORDER BY p.created_at, p.id
	`, profileColumns)

	profiles := []*model.Profile{}
	if err := r.selectRows(ctx, "perfiles.list_by_clinic", &profiles, query, clinicID, role); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) FindAnyByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM perfiles p
		LEFT JOIN especialidades e ON e.id = p.especialidad_id
		WHERE p.consultorio_id = $1
		ORDER BY p.created_at, p.id
		LIMIT 1
	`, profileColumns)

	var profile model.Profile
	if err := r.get(ctx, "perfiles.find_any_by_clinic", "profile", &profile, query, clinicID); err != nil {
		return nil, fmt.Errorf("failed to find clinic profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) ListDoctorSlugs(ctx context.Context) ([]*model.SlugEntry, error) {
	query := `
		SELECT slug, created_at
		FROM perfiles
		WHERE rol = $1 AND slug IS NOT NULL
		ORDER BY created_at
	`
	entries := []*model.SlugEntry{}
	if err := r.selectRows(ctx, "perfiles.list_doctor_slugs", &entries, query, model.RoleDoctor); err != nil {
		return nil, fmt.Errorf("failed to list doctor slugs: %w", err)
	}
	return entries, nil
}
