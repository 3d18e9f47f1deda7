package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/jwalitptl/directory-web/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	TemplateHome     = "home"
	TemplateSearch   = "search"
	TemplateClinic   = "clinic"
	TemplateDoctor   = "doctor"
	TemplateContact  = "contact"
	TemplateNotFound = "not_found"
	TemplateError    = "error"
)

// Funcs are available to every view.
var Funcs = template.FuncMap{
	"deref":    deref,
	"initials": model.Initials,
	"year":     func() int { return time.Now().Year() },
	// tel: links are built server side from stored phone numbers.
	"telURL":   func(s string) template.URL { return template.URL(s) },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
}

// Templates parses every embedded view into one set.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

// Static serves the stylesheet and the contact form script.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
