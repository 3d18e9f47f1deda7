package search

import (
	"github.com/google/uuid"

	"github.com/jwalitptl/directory-web/internal/model"
)

// Search index rows carry no schedule or branding, so cards use these.
const (
	DefaultAppointmentMinutes = 30
	DefaultOpeningTime        = "09:00"
	DefaultClosingTime        = "18:00"
	DefaultThemeColor         = "#0e7490"
	DefaultCategory           = model.CategoryGeneralMedicine
)

// ToCard shapes one search index row into a listing card.
func ToCard(row *model.SearchIndexRow) model.ClinicCard {
	id, _ := uuid.Parse(row.ID)

	doctors := []model.DoctorSummary(row.Doctors)
	if doctors == nil {
		doctors = []model.DoctorSummary{}
	}

	label := ""
	if row.SpecialtyLabel != nil {
		label = *row.SpecialtyLabel
	}

	return model.ClinicCard{
		Clinic: model.Clinic{
			Base:                model.Base{ID: id, CreatedAt: row.CreatedAt},
			Name:                row.Name,
			Slug:                row.Slug,
			Address:             row.Address,
			LogoURL:             row.LogoURL,
			OpeningTime:         DefaultOpeningTime,
			ClosingTime:         DefaultClosingTime,
			AppointmentDuration: DefaultAppointmentMinutes,
			ThemeColor:          DefaultThemeColor,
			Category:            DefaultCategory,
		},
		Key:            row.Key(),
		SourceType:     row.SourceType,
		Doctors:        doctors,
		Specialties:    []string{},
		SpecialtyLabel: label,
		IsVerified:     row.IsVerified,
	}
}
