package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/directory-web/internal/model"
)

// All repository interfaces in one file
type (
	// SearchRepository reads the search_index view
	SearchRepository interface {
		Search(ctx context.Context, filter model.SearchFilter) ([]*model.SearchIndexRow, int, error)
	}

	ClinicRepository interface {
		GetBySlug(ctx context.Context, slug string) (*model.Clinic, error)
		ListSlugs(ctx context.Context) ([]*model.SlugEntry, error)
		Create(ctx context.Context, clinic *model.Clinic) error
		DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error)
	}

	ProfileRepository interface {
		ListByClinic(ctx context.Context, clinicID uuid.UUID, role string) ([]*model.Profile, error)
		// FindAnyByClinic returns one profile of the clinic regardless of role, or NotFound.
		FindAnyByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Profile, error)
		ListDoctorSlugs(ctx context.Context) ([]*model.SlugEntry, error)
	}

	SpecialtyRepository interface {
		List(ctx context.Context) ([]*model.Specialty, error)
		Get(ctx context.Context, id string) (*model.Specialty, error)
	}

	ListingRepository interface {
		GetBySlug(ctx context.Context, slug string) (*model.Listing, error)
		// FindByClinic returns the listing linked to the clinic, or NotFound.
		FindByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Listing, error)
		Create(ctx context.Context, listing *model.Listing) error
		DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error)
	}
)
