package sitemap

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository/mocks"
)

type fakeSpecialties struct {
	list []*model.Specialty
	err  error
}

func (f fakeSpecialties) List(context.Context) ([]*model.Specialty, error) {
	return f.list, f.err
}

func TestBuild(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clinics := new(mocks.ClinicRepository)
	clinics.On("ListSlugs", mock.Anything).Return([]*model.SlugEntry{{Slug: "clinica-sol", CreatedAt: created}}, nil)
	profiles := new(mocks.ProfileRepository)
	profiles.On("ListDoctorSlugs", mock.Anything).Return([]*model.SlugEntry{{Slug: "dr-ana", CreatedAt: created}}, nil)
	spID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	specialties := fakeSpecialties{list: []*model.Specialty{{Base: model.Base{ID: spID}, Name: "Cardiología"}}}

	svc := NewService("https://doctoresecuador.com/", clinics, profiles, specialties)
	svc.now = func() time.Time { return created.Add(time.Hour) }

	set := svc.Build(context.Background())
	require.Len(t, set.URLs, 6)

	assert.Equal(t, Entry{Loc: "https://doctoresecuador.com", LastMod: "2024-03-01T13:00:00Z", ChangeFreq: Daily, Priority: "1.0"}, set.URLs[0])
	assert.Equal(t, "https://doctoresecuador.com/buscar", set.URLs[1].Loc)
	assert.Equal(t, Monthly, set.URLs[2].ChangeFreq)
	assert.Equal(t, Entry{Loc: "https://doctoresecuador.com/consultorio/clinica-sol", LastMod: "2024-03-01T12:00:00Z", ChangeFreq: Weekly, Priority: "0.8"}, set.URLs[3])
	assert.Equal(t, "https://doctoresecuador.com/doctor/dr-ana", set.URLs[4].Loc)
	assert.Equal(t, "0.7", set.URLs[4].Priority)
	assert.Equal(t, "https://doctoresecuador.com/buscar?especialidad=11111111-1111-1111-1111-111111111111", set.URLs[5].Loc)
	assert.Equal(t, "0.6", set.URLs[5].Priority)
}

func TestBuild_FailedGroupsAreSkipped(t *testing.T) {
	clinics := new(mocks.ClinicRepository)
	clinics.On("ListSlugs", mock.Anything).Return(nil, errors.New("down"))
	profiles := new(mocks.ProfileRepository)
	profiles.On("ListDoctorSlugs", mock.Anything).Return(nil, errors.New("down"))

	svc := NewService("https://doctoresecuador.com", clinics, profiles, fakeSpecialties{err: errors.New("down")})
	set := svc.Build(context.Background())
	assert.Len(t, set.URLs, 3)
}

func TestRender(t *testing.T) {
	set := &URLSet{Xmlns: xmlns, URLs: []Entry{{Loc: "https://doctoresecuador.com/buscar?especialidad=a&b", ChangeFreq: Weekly, Priority: "0.6"}}}
	out, err := Render(set)
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, doc, "<loc>https://doctoresecuador.com/buscar?especialidad=a&amp;b</loc>")
	assert.Contains(t, doc, "<changefreq>weekly</changefreq>")
}
