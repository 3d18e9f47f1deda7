package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// SourceType tags which table a search_index row came from.
type SourceType string

const (
	SourceClinic  SourceType = "CONSULTORIO"
	SourceListing SourceType = "LISTING"
)

// Valid reports whether s is one of the two known sources.
func (s SourceType) Valid() bool {
	return s == SourceClinic || s == SourceListing
}

// DoctorSummary is one element of search_index.doctores_data.
type DoctorSummary struct {
	ID        string  `json:"id"`
	FullName  string  `json:"nombre_completo"`
	PhotoURL  *string `json:"foto_url"`
	Specialty *string `json:"especialidad"`
}

// Initials returns up to two leading letters of the name.
func (d DoctorSummary) Initials() string {
	return Initials(d.FullName)
}

// DoctorSummaries scans the doctores_data jsonb column.
type DoctorSummaries []DoctorSummary

func (d *DoctorSummaries) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = DoctorSummaries{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("doctores_data: unsupported type %T", src)
	}
	out := DoctorSummaries{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("doctores_data: %w", err)
		}
	}
	*d = out
	return nil
}

func (d DoctorSummaries) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// SearchIndexRow is a row of the search_index view.
type SearchIndexRow struct {
	ID             string          `db:"id" json:"id"`
	SourceType     SourceType      `db:"source_type" json:"source_type"`
	Name           string          `db:"nombre" json:"nombre"`
	Slug           *string         `db:"slug" json:"slug"`
	Address        *string         `db:"direccion" json:"direccion"`
	Phone          *string         `db:"telefono" json:"telefono"`
	LogoURL        *string         `db:"logo_url" json:"logo_url"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	IsVerified     bool            `db:"is_verified" json:"is_verified"`
	SpecialtyLabel *string         `db:"especialidad_label" json:"especialidad_label"`
	SpecialtyIDs   pq.StringArray  `db:"especialidad_ids" json:"especialidad_ids"`
	Doctors        DoctorSummaries `db:"doctores_data" json:"doctores_data"`
}

// Key is unique across the whole view.
func (r *SearchIndexRow) Key() string {
	return string(r.SourceType) + "-" + r.ID
}

// SearchFilter selects a page of the search index.
type SearchFilter struct {
	SpecialtyID string
	Pagination
}
