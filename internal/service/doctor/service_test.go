package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository/mocks"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestGetPage_VerifiedWithClinicCanBook(t *testing.T) {
	clinicID := uuid.MustParse("9f3b2c1a-0000-4000-8000-000000000001")
	repo := new(mocks.ListingRepository)
	repo.On("GetBySlug", mock.Anything, "jose-perez-dr-a1b2c").Return(&model.Listing{
		Slug:       "jose-perez-dr-a1b2c",
		Name:       "José Pérez",
		Specialty:  strPtr("Cardiología"),
		Phone:      strPtr("02 555 1234"),
		IsVerified: true,
		ClinicID:   &clinicID,
	}, nil)

	svc := NewService(repo, "https://app.clinify.io/booking/")
	page, err := svc.GetPage(context.Background(), "jose-perez-dr-a1b2c")
	require.NoError(t, err)

	assert.Equal(t, "https://app.clinify.io/booking/9f3b2c1a-0000-4000-8000-000000000001", page.BookingURL)
	assert.Equal(t, "José Pérez - Cardiología", page.Title)
	assert.Equal(t, "José Pérez, especialista en Cardiología. Perfil verificado. Agenda tu cita online.", page.Description)
	assert.Equal(t, "tel:025551234", page.PhoneHref())
	assert.Equal(t, "https://wa.me/025551234", page.WhatsAppHref())
	assert.Equal(t, "JP", page.Initials())
}

func TestGetPage_UnverifiedHasNoBooking(t *testing.T) {
	clinicID := uuid.New()
	repo := new(mocks.ListingRepository)
	repo.On("GetBySlug", mock.Anything, "ana").Return(&model.Listing{Name: "Ana Soto", ClinicID: &clinicID}, nil)
	repo.On("GetBySlug", mock.Anything, "luis").Return(&model.Listing{Name: "Luis Vera", IsVerified: true}, nil)

	svc := NewService(repo, "https://app.clinify.io/booking")

	page, err := svc.GetPage(context.Background(), "ana")
	require.NoError(t, err)
	assert.Empty(t, page.BookingURL)
	assert.Equal(t, "Ana Soto", page.Title)
	assert.Equal(t, "Ana Soto. Consulta su información de contacto.", page.Description)
	assert.Empty(t, page.PhoneHref())
	assert.Empty(t, page.WhatsAppHref())

	page, err = svc.GetPage(context.Background(), "luis")
	require.NoError(t, err)
	assert.Empty(t, page.BookingURL)
}

func TestGetPage_NotFound(t *testing.T) {
	repo := new(mocks.ListingRepository)
	repo.On("GetBySlug", mock.Anything, "nadie").Return(nil, apperrors.NotFound("listing", nil))
	repo.On("GetBySlug", mock.Anything, "roto").Return(nil, errors.New("broken pipe"))

	svc := NewService(repo, "https://app.clinify.io/booking")

	_, err := svc.GetPage(context.Background(), "nadie")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetPage(context.Background(), "roto")
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}
