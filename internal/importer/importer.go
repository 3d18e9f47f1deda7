package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
)

const (
	progressEvery     = 10
	rollbackChunkSize = 50
	rollbackWindow    = 24 * time.Hour
)

// Summary counts the outcome of an import run.
type Summary struct {
	Success int
	Errors  int
}

type RollbackSummary struct {
	Names            int
	DeletedListings  int64
	DeletedClinics   int64
	FailedStatements int
}

// Importer writes CSV records into the directory tables. No run is
// transactional.
type Importer struct {
	clinics  repository.ClinicRepository
	listings repository.ListingRepository
	progress io.Writer
	token    TokenFunc
	now      func() time.Time
}

func New(clinics repository.ClinicRepository, listings repository.ListingRepository, progress io.Writer) *Importer {
	return &Importer{
		clinics:  clinics,
		listings: listings,
		progress: progress,
		token:    RandomToken,
		now:      time.Now,
	}
}

func (im *Importer) tick(s *Summary) {
	s.Success++
	if s.Success%progressEvery == 0 {
		fmt.Fprint(im.progress, ".")
	}
}

// ImportClinics creates a clinic and a linked unverified listing per record.
// The first failure stops the run; rows written before it stay.
func (im *Importer) ImportClinics(ctx context.Context, records []Record) (Summary, error) {
	var s Summary
	for _, rec := range records {
		slug := Slug(rec.Name, im.token)
		address, phone := rec.Address, rec.Phone

		clinic := &model.Clinic{
			Name:     rec.Name,
			Slug:     &slug,
			Address:  &address,
			Phone:    &phone,
			Category: model.CategoryGeneralMedicine,
		}
		if err := im.clinics.Create(ctx, clinic); err != nil {
			return s, fmt.Errorf("creating consultorio %q: %w", rec.Name, err)
		}

		clinicID := clinic.ID
		listing := newListing(rec, slug)
		listing.ClinicID = &clinicID
		if err := im.listings.Create(ctx, listing); err != nil {
			return s, fmt.Errorf("creating listing %q: %w", rec.Name, err)
		}
		im.tick(&s)
	}
	return s, nil
}

// ImportListings creates standalone listings. Failures are logged and
// counted and the run goes on.
func (im *Importer) ImportListings(ctx context.Context, records []Record) Summary {
	var s Summary
	for _, rec := range records {
		listing := newListing(rec, Slug(rec.Name, im.token))
		if err := im.listings.Create(ctx, listing); err != nil {
			log.Error().Err(err).Str("nombre", rec.Name).Msg("Error creating listing")
			s.Errors++
			continue
		}
		im.tick(&s)
	}
	return s
}

// Rollback deletes listings and then clinics named in names that were
// created within the last 24 hours, in chunks of 50 names.
func (im *Importer) Rollback(ctx context.Context, names []string) RollbackSummary {
	s := RollbackSummary{Names: len(names)}
	since := im.now().Add(-rollbackWindow)

	for start := 0; start < len(names); start += rollbackChunkSize {
		end := start + rollbackChunkSize
		if end > len(names) {
			end = len(names)
		}
		chunk := names[start:end]

		if n, err := im.listings.DeleteImported(ctx, chunk, since); err != nil {
			log.Error().Err(err).Int("offset", start).Msg("Error deleting listings chunk")
			s.FailedStatements++
		} else {
			s.DeletedListings += n
		}

		if n, err := im.clinics.DeleteImported(ctx, chunk, since); err != nil {
			log.Error().Err(err).Int("offset", start).Msg("Error deleting consultorios chunk")
			s.FailedStatements++
		} else {
			s.DeletedClinics += n
		}
		fmt.Fprint(im.progress, ".")
	}
	return s
}

func newListing(rec Record, slug string) *model.Listing {
	address, phone := rec.Address, rec.Phone
	return &model.Listing{
		Slug:       slug,
		Name:       rec.Name,
		Address:    &address,
		Phone:      &phone,
		Specialty:  rec.Specialty,
		City:       rec.City,
		IsVerified: false,
	}
}
