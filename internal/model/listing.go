package model

import (
	"github.com/google/uuid"
)

// Listing is a row of directory_listings.
type Listing struct {
	Base
	Slug       string     `db:"slug" json:"slug"`
	Name       string     `db:"nombre" json:"nombre"`
	Address    *string    `db:"direccion" json:"direccion"`
	Phone      *string    `db:"telefono" json:"telefono"`
	PhotoURL   *string    `db:"foto_url" json:"foto_url"`
	Specialty  *string    `db:"especialidad" json:"especialidad"`
	City       string     `db:"ciudad" json:"ciudad"`
	IsVerified bool       `db:"is_verified" json:"is_verified"`
	ClinicID   *uuid.UUID `db:"consultorio_id" json:"consultorio_id"`
	ViewsCount int        `db:"views_count" json:"views_count"`
	Rating     float64    `db:"rating" json:"rating"`
}

// SpecialtyValue returns the free-text specialty or "".
func (l *Listing) SpecialtyValue() string {
	return deref(l.Specialty)
}

// CanBook reports whether the listing may show a booking action.
func (l *Listing) CanBook() bool {
	return l.IsVerified && l.ClinicID != nil
}
