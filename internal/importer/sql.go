package importer

import (
	"fmt"
	"io"
	"strings"
)

const migrationHeader = `-- Migration: Import Ecuador Listings (Unverified)
-- Generated automatically

`

// EscapeSQL quotes s as a SQL literal, or NULL when empty.
func EscapeSQL(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// WriteSQL emits one standalone-listing INSERT per record.
func WriteSQL(w io.Writer, records []Record, token TokenFunc) error {
	if _, err := io.WriteString(w, migrationHeader); err != nil {
		return err
	}
	for _, rec := range records {
		specialty := ""
		if rec.Specialty != nil {
			specialty = *rec.Specialty
		}
		values := []string{
			EscapeSQL(rec.Name),
			EscapeSQL(Slug(rec.Name, token)),
			EscapeSQL(rec.Address),
			EscapeSQL(rec.Phone),
			EscapeSQL(specialty),
			EscapeSQL(rec.City),
			"false",
			"NULL",
		}
		_, err := fmt.Fprintf(w,
			"INSERT INTO public.directory_listings (nombre, slug, direccion, telefono, especialidad, ciudad, is_verified, consultorio_id) VALUES (%s);\n",
			strings.Join(values, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}
