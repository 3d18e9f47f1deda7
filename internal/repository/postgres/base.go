package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
	"github.com/jwalitptl/directory-web/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

func (r *BaseRepository) get(ctx context.Context, op, resource string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		r.metrics.ObserveQuery(op, start, nil)
		return apperrors.NotFound(resource, err)
	}
	r.metrics.ObserveQuery(op, start, err)
	return err
}

func (r *BaseRepository) selectRows(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := r.db.SelectContext(ctx, dest, query, args...)
	r.metrics.ObserveQuery(op, start, err)
	return err
}

func (r *BaseRepository) exec(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, args...)
	r.metrics.ObserveQuery(op, start, err)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
