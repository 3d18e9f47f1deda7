package model

import (
	"github.com/google/uuid"
)

// RoleDoctor is the perfiles.rol value for practitioners shown on clinic pages.
const RoleDoctor = "DOCTOR"

// Profile is a row of perfiles with the joined specialty name.
type Profile struct {
	Base
	FullName         *string    `db:"nombre_completo" json:"nombre_completo"`
	Role             string     `db:"rol" json:"rol"`
	Email            *string    `db:"email" json:"email"`
	Specialty        *string    `db:"especialidad" json:"especialidad"`
	SpecialtyID      *uuid.UUID `db:"especialidad_id" json:"especialidad_id"`
	ClinicID         *uuid.UUID `db:"consultorio_id" json:"consultorio_id"`
	ResolutionNumber *string    `db:"numero_resolucion" json:"numero_resolucion"`
	Phone            *string    `db:"telefono" json:"telefono"`
	PhotoURL         *string    `db:"foto_url" json:"foto_url"`
	Slug             *string    `db:"slug" json:"slug"`

	// SpecialtyName comes from the especialidades join, nil when unlinked.
	SpecialtyName *string `db:"especialidad_nombre" json:"especialidad_nombre,omitempty"`
}

// DisplaySpecialty prefers the linked specialty name over the free-text column.
func (p *Profile) DisplaySpecialty() string {
	if name := deref(p.SpecialtyName); name != "" {
		return name
	}
	return deref(p.Specialty)
}

// DisplayName returns the full name or "".
func (p *Profile) DisplayName() string {
	return deref(p.FullName)
}
