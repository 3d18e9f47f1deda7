// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
)

var (
	_ repository.SearchRepository    = (*SearchRepository)(nil)
	_ repository.ClinicRepository    = (*ClinicRepository)(nil)
	_ repository.ProfileRepository   = (*ProfileRepository)(nil)
	_ repository.SpecialtyRepository = (*SpecialtyRepository)(nil)
	_ repository.ListingRepository   = (*ListingRepository)(nil)
)

type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) Search(ctx context.Context, filter model.SearchFilter) ([]*model.SearchIndexRow, int, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*model.SearchIndexRow)
	return rows, args.Int(1), args.Error(2)
}

type ClinicRepository struct {
	mock.Mock
}

func (m *ClinicRepository) GetBySlug(ctx context.Context, slug string) (*model.Clinic, error) {
	args := m.Called(ctx, slug)
	clinic, _ := args.Get(0).(*model.Clinic)
	return clinic, args.Error(1)
}

func (m *ClinicRepository) ListSlugs(ctx context.Context) ([]*model.SlugEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]*model.SlugEntry)
	return entries, args.Error(1)
}

func (m *ClinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	args := m.Called(ctx, clinic)
	return args.Error(0)
}

func (m *ClinicRepository) DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error) {
	args := m.Called(ctx, names, since)
	return args.Get(0).(int64), args.Error(1)
}

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) ListByClinic(ctx context.Context, clinicID uuid.UUID, role string) ([]*model.Profile, error) {
	args := m.Called(ctx, clinicID, role)
	profiles, _ := args.Get(0).([]*model.Profile)
	return profiles, args.Error(1)
}

func (m *ProfileRepository) FindAnyByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, clinicID)
	profile, _ := args.Get(0).(*model.Profile)
	return profile, args.Error(1)
}

func (m *ProfileRepository) ListDoctorSlugs(ctx context.Context) ([]*model.SlugEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]*model.SlugEntry)
	return entries, args.Error(1)
}

type SpecialtyRepository struct {
	mock.Mock
}

func (m *SpecialtyRepository) List(ctx context.Context) ([]*model.Specialty, error) {
	args := m.Called(ctx)
	specialties, _ := args.Get(0).([]*model.Specialty)
	return specialties, args.Error(1)
}

func (m *SpecialtyRepository) Get(ctx context.Context, id string) (*model.Specialty, error) {
	args := m.Called(ctx, id)
	specialty, _ := args.Get(0).(*model.Specialty)
	return specialty, args.Error(1)
}

type ListingRepository struct {
	mock.Mock
}

func (m *ListingRepository) GetBySlug(ctx context.Context, slug string) (*model.Listing, error) {
	args := m.Called(ctx, slug)
	listing, _ := args.Get(0).(*model.Listing)
	return listing, args.Error(1)
}

func (m *ListingRepository) FindByClinic(ctx context.Context, clinicID uuid.UUID) (*model.Listing, error) {
	args := m.Called(ctx, clinicID)
	listing, _ := args.Get(0).(*model.Listing)
	return listing, args.Error(1)
}

func (m *ListingRepository) Create(ctx context.Context, listing *model.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *ListingRepository) DeleteImported(ctx context.Context, names []string, since time.Time) (int64, error) {
	args := m.Called(ctx, names, since)
	return args.Get(0).(int64), args.Error(1)
}
