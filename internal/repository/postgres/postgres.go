package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/directory-web/internal/repository"
	"github.com/jwalitptl/directory-web/pkg/metrics"
)

type searchRepository struct {
	BaseRepository
}

type clinicRepository struct {
	BaseRepository
}

type profileRepository struct {
	BaseRepository
}

type specialtyRepository struct {
	BaseRepository
}

type listingRepository struct {
	BaseRepository
}

func NewSearchRepository(db *sqlx.DB, m *metrics.Metrics) repository.SearchRepository {
	return &searchRepository{NewBaseRepository(db, m)}
}

func NewClinicRepository(db *sqlx.DB, m *metrics.Metrics) repository.ClinicRepository {
	return &clinicRepository{NewBaseRepository(db, m)}
}

func NewProfileRepository(db *sqlx.DB, m *metrics.Metrics) repository.ProfileRepository {
	return &profileRepository{NewBaseRepository(db, m)}
}

func NewSpecialtyRepository(db *sqlx.DB, m *metrics.Metrics) repository.SpecialtyRepository {
	return &specialtyRepository{NewBaseRepository(db, m)}
}

func NewListingRepository(db *sqlx.DB, m *metrics.Metrics) repository.ListingRepository {
	return &listingRepository{NewBaseRepository(db, m)}
}
