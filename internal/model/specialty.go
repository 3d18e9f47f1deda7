package model

// Specialty is a row of especialidades.
type Specialty struct {
	Base
	Name                string  `db:"nombre" json:"nombre"`
	Code                *string `db:"codigo" json:"codigo"`
	Icon                *string `db:"icono" json:"icono"`
	RequiresDentalChart bool    `db:"requiere_odontograma" json:"requiere_odontograma"`
}
