package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

type DoctorServicer interface {
	GetPage(ctx context.Context, slug string) (*Page, error)
}

// Page is a directory listing prepared for its profile view. BookingURL is
// empty unless the listing is verified and linked to a clinic.
type Page struct {
	Listing     *model.Listing
	BookingURL  string
	Title       string
	Description string
	Image       string
}

// Initials returns the avatar letters for listings without a photo.
func (p *Page) Initials() string {
	return model.Initials(p.Listing.Name)
}

// PhoneHref returns a tel: link with spaces removed, or "".
func (p *Page) PhoneHref() string {
	if p.Listing.Phone == nil || *p.Listing.Phone == "" {
		return ""
	}
	return "tel:" + strings.ReplaceAll(*p.Listing.Phone, " ", "")
}

// WhatsAppHref returns a wa.me link built from the phone digits, or "".
func (p *Page) WhatsAppHref() string {
	if p.Listing.Phone == nil {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, *p.Listing.Phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

type Service struct {
	listings       repository.ListingRepository
	bookingBaseURL string
}

func NewService(listings repository.ListingRepository, bookingBaseURL string) *Service {
	return &Service{
		listings:       listings,
		bookingBaseURL: strings.TrimSuffix(bookingBaseURL, "/"),
	}
}

func (s *Service) GetPage(ctx context.Context, slug string) (*Page, error) {
	listing, err := s.listings.GetBySlug(ctx, slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("doctor", err)
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}

	page := &Page{
		Listing:     listing,
		BookingURL:  s.BookingURL(listing),
		Title:       Title(listing),
		Description: Description(listing),
	}
	if listing.PhotoURL != nil {
		page.Image = *listing.PhotoURL
	}
	return page, nil
}

// BookingURL returns the clinic booking link for bookable listings.
func (s *Service) BookingURL(listing *model.Listing) string {
	if !listing.CanBook() {
		return ""
	}
	return s.bookingBaseURL + "/" + listing.ClinicID.String()
}

func Title(listing *model.Listing) string {
	if sp := listing.SpecialtyValue(); sp != "" {
		return listing.Name + " - " + sp
	}
	return listing.Name
}

func Description(listing *model.Listing) string {
	d := listing.Name
	if sp := listing.SpecialtyValue(); sp != "" {
		d += ", especialista en " + sp
	}
	if listing.IsVerified {
		return d + ". Perfil verificado. Agenda tu cita online."
	}
	return d + ". Consulta su información de contacto."
}
