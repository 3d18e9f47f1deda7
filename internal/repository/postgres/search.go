package postgres

import (
	"context"
	"fmt"

	"github.com/jwalitptl/directory-web/internal/model"
)

const searchColumns = `
	id, source_type, nombre, slug, direccion, telefono, logo_url, created_at,
	is_verified, especialidad_label, especialidad_ids, doctores_data`

// Search returns one page of the search_index view and the total number of
// matching rows. Verified rows sort first, then by name; source_type and id
// only break exact ties so that pages never overlap.
func (r *searchRepository) Search(ctx context.Context, filter model.SearchFilter) ([]*model.SearchIndexRow, int, error) {
	where := ""
	args := []interface{}{}
	if filter.SpecialtyID != "" {
		where = "WHERE especialidad_ids @> ARRAY[$1]::uuid[]"
		args = append(args, filter.SpecialtyID)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM search_index %s`, where)
	if err := r.get(ctx, "search_index.count", "search index", &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`
		SELECT %s
		FROM search_index
		%s
		ORDER BY is_verified DESC, nombre ASC, source_type ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, searchColumns, where, n+1, n+2)
	args = append(args, filter.PageSize, filter.Offset())

	rows := []*model.SearchIndexRow{}
	if err := r.selectRows(ctx, "search_index.select", &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to query search index: %w", err)
	}
	return rows, total, nil
}
