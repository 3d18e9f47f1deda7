package sitemap

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

type Entry struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

type SpecialtyLister interface {
	List(ctx context.Context) ([]*model.Specialty, error)
}

type Service struct {
	baseURL     string
	clinics     repository.ClinicRepository
	profiles    repository.ProfileRepository
	specialties SpecialtyLister
	now         func() time.Time
}

func NewService(baseURL string, clinics repository.ClinicRepository, profiles repository.ProfileRepository, specialties SpecialtyLister) *Service {
	return &Service{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		clinics:     clinics,
		profiles:    profiles,
		specialties: specialties,
		now:         time.Now,
	}
}

// Build lists static pages, clinics, doctors and specialty searches in that
// order. A failed lookup is logged and leaves its group out.
func (s *Service) Build(ctx context.Context) *URLSet {
	now := s.now()
	set := &URLSet{Xmlns: xmlns}
	add := func(path string, mod time.Time, freq ChangeFreq, priority string) {
		set.URLs = append(set.URLs, Entry{
			Loc:        s.baseURL + path,
			LastMod:    mod.UTC().Format(time.RFC3339),
			ChangeFreq: freq,
			Priority:   priority,
		})
	}

	add("", now, Daily, "1.0")
	add("/buscar", now, Daily, "0.9")
	add("/contacto", now, Monthly, "0.5")

	clinics, err := s.clinics.ListSlugs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sitemap: failed to list clinic slugs")
	}
	for _, c := range clinics {
		add("/consultorio/"+c.Slug, c.CreatedAt, Weekly, "0.8")
	}

	doctors, err := s.profiles.ListDoctorSlugs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sitemap: failed to list doctor slugs")
	}
	for _, d := range doctors {
		add("/doctor/"+d.Slug, d.CreatedAt, Weekly, "0.7")
	}

	specialties, err := s.specialties.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sitemap: failed to list specialties")
	}
	for _, sp := range specialties {
		add("/buscar?especialidad="+sp.ID.String(), now, Weekly, "0.6")
	}
	return set
}

// Render encodes the set as a sitemaps.org document.
func Render(set *URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
