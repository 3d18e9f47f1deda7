package model

import (
	"strings"
	"unicode/utf8"
)

// ClinicCard is the presentation record the listing card renders. Clinics and
// standalone listings are both shaped into it.
type ClinicCard struct {
	Clinic         Clinic
	Key            string
	SourceType     SourceType
	Doctors        []DoctorSummary
	Specialties    []string
	SpecialtyLabel string
	IsVerified     bool
}

// DisplayLabel falls back to the category label when no specialty label exists.
func (c ClinicCard) DisplayLabel() string {
	if c.SpecialtyLabel != "" {
		return c.SpecialtyLabel
	}
	return c.Clinic.Category.Label()
}

// Href links verified cards to their clinic page; others have no page.
func (c ClinicCard) Href() string {
	if !c.IsVerified {
		return ""
	}
	if slug := c.Clinic.SlugValue(); slug != "" {
		return "/consultorio/" + slug
	}
	return "#"
}

// Initials returns the first letter of up to two words, as shown on avatars.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
