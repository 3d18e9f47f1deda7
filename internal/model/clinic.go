package model

// ClinicCategory is the tipo_consultorio enum.
type ClinicCategory string

const (
	CategoryGeneralMedicine ClinicCategory = "MEDICINA_GENERAL"
	CategoryDentistry       ClinicCategory = "ODONTOLOGIA"
	CategoryMixed           ClinicCategory = "MIXTO"
)

var categoryLabels = map[ClinicCategory]string{
	CategoryGeneralMedicine: "Medicina General",
	CategoryDentistry:       "Odontología",
	CategoryMixed:           "Mixto",
}

// Label returns the display name, or the raw value for unknown categories.
func (c ClinicCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Clinic is a row of consultorios.
type Clinic struct {
	Base
	Name                string         `db:"nombre" json:"nombre"`
	Slug                *string        `db:"slug" json:"slug"`
	Address             *string        `db:"direccion" json:"direccion"`
	Phone               *string        `db:"telefono" json:"telefono"`
	Email               *string        `db:"correo" json:"correo"`
	OpeningTime         string         `db:"hora_apertura" json:"hora_apertura"`
	ClosingTime         string         `db:"hora_cierre" json:"hora_cierre"`
	AppointmentDuration int            `db:"duracion_cita_minutos" json:"duracion_cita_minutos"`
	ThemeColor          string         `db:"color_tema" json:"color_tema"`
	TaxID               *string        `db:"ruc" json:"ruc"`
	LogoURL             *string        `db:"logo_url" json:"logo_url"`
	Category            ClinicCategory `db:"tipo_consultorio" json:"tipo_consultorio"`
}

// SlugValue returns the slug or "" when unset.
func (c *Clinic) SlugValue() string {
	return deref(c.Slug)
}

// Hours formats the opening window as HH:MM - HH:MM.
func (c *Clinic) Hours() string {
	return clock(c.OpeningTime) + " - " + clock(c.ClosingTime)
}

func clock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
