package clinic

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

type ClinicServicer interface {
	GetPage(ctx context.Context, slug string) (*Page, error)
}

// Page is everything the clinic detail view renders.
type Page struct {
	Clinic         *model.Clinic
	Doctors        []*model.Profile
	SpecialtyLabel string
	IsVerified     bool
	Specialties    []string
	Title          string
	Description    string
	Image          string
}

// InfoCard is one caption/value tile of the clinic header.
type InfoCard struct {
	Caption string
	Value   string
}

// StaffCard shows the doctor count, or marks the clinic as independent.
func (p *Page) StaffCard() InfoCard {
	if len(p.Doctors) > 0 {
		return InfoCard{Caption: "Doctores", Value: strconv.Itoa(len(p.Doctors))}
	}
	return InfoCard{Caption: "Tipo", Value: "Independiente"}
}

type Service struct {
	clinics  repository.ClinicRepository
	profiles repository.ProfileRepository
	listings repository.ListingRepository
	chain    []LabelStrategy
}

func NewService(clinics repository.ClinicRepository, profiles repository.ProfileRepository, listings repository.ListingRepository) *Service {
	return &Service{
		clinics:  clinics,
		profiles: profiles,
		listings: listings,
		chain:    DefaultLabelChain,
	}
}

// GetPage resolves a clinic by slug. A missing clinic is a NotFound error;
// failed secondary lookups only narrow the label choices.
func (s *Service) GetPage(ctx context.Context, slug string) (*Page, error) {
	clinic, err := s.clinics.GetBySlug(ctx, slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("clinic", err)
		}
		return nil, fmt.Errorf("failed to load clinic: %w", err)
	}

	doctors, err := s.profiles.ListByClinic(ctx, clinic.ID, model.RoleDoctor)
	if err != nil {
		log.Error().Err(err).Str("consultorio_id", clinic.ID.String()).Msg("failed to load clinic doctors")
		doctors = nil
	}
	if doctors == nil {
		doctors = []*model.Profile{}
	}

	in := LabelInput{Clinic: clinic, Doctors: doctors}
	page := &Page{Clinic: clinic, Doctors: doctors}

	if len(doctors) == 0 {
		in.Listing = s.findListing(ctx, clinic)
		if in.Listing != nil {
			page.IsVerified = in.Listing.IsVerified
		}
		if ListingSpecialtyLabel(in) == "" {
			in.AnyProfile = s.findAnyProfile(ctx, clinic)
		}
	}

	page.SpecialtyLabel = ResolveLabel(in, s.chain)
	page.Specialties = SidebarSpecialties(doctors, page.SpecialtyLabel)
	page.Title = clinic.Name
	page.Description = Description(clinic)
	if clinic.LogoURL != nil {
		page.Image = *clinic.LogoURL
	}
	return page, nil
}

func (s *Service) findListing(ctx context.Context, clinic *model.Clinic) *model.Listing {
	listing, err := s.listings.FindByClinic(ctx, clinic.ID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.Error().Err(err).Str("consultorio_id", clinic.ID.String()).Msg("failed to load clinic listing")
		}
		return nil
	}
	return listing
}

func (s *Service) findAnyProfile(ctx context.Context, clinic *model.Clinic) *model.Profile {
	profile, err := s.profiles.FindAnyByClinic(ctx, clinic.ID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.Error().Err(err).Str("consultorio_id", clinic.ID.String()).Msg("failed to load clinic profile")
		}
		return nil
	}
	return profile
}

// Description is the meta description of a clinic page.
func Description(clinic *model.Clinic) string {
	d := clinic.Name
	if addr := clinic.Address; addr != nil && *addr != "" {
		d += " - " + *addr
	}
	return d + ". Agenda tu cita online."
}
