package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/directory-web/internal/model"
)

const specialtyColumns = `id, created_at, nombre, codigo, icono, requiere_odontograma`

func (r *specialtyRepository) List(ctx context.Context) ([]*model.Specialty, error) {
	query := fmt.Sprintf(`SELECT %s FROM especialidades ORDER BY nombre`, specialtyColumns)

	specialties := []*model.Specialty{}
	if err := r.selectRows(ctx, "especialidades.list", &specialties, query); err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return specialties, nil
}

func (r *specialtyRepository) Get(ctx context.Context, id string) (*model.Specialty, error) {
	query := fmt.Sprintf(`SELECT %s FROM especialidades WHERE id::text = $1`, specialtyColumns)

	var specialty model.Specialty
	if err := r.get(ctx, "especialidades.get", "specialty", &specialty, query, id); err != nil {
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	return &specialty, nil
}
