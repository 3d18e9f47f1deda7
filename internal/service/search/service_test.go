package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository/mocks"
	"github.com/jwalitptl/directory-web/pkg/metrics"
)

type fakeNamer map[string]string

func (f fakeNamer) Name(_ context.Context, id string) (string, error) {
	return f[id], nil
}

const cardiologyID = "11111111-1111-1111-1111-111111111111"

// memoryIndex answers Search from a slice the way the view query does.
type memoryIndex struct {
	rows []*model.SearchIndexRow
}

func (m *memoryIndex) Search(_ context.Context, filter model.SearchFilter) ([]*model.SearchIndexRow, int, error) {
	matched := []*model.SearchIndexRow{}
	for _, r := range m.rows {
		if filter.SpecialtyID == "" || contains(r.SpecialtyIDs, filter.SpecialtyID) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].IsVerified != matched[j].IsVerified {
			return matched[i].IsVerified
		}
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].Key() < matched[j].Key()
	})
	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func seed(n int) *memoryIndex {
	idx := &memoryIndex{}
	for i := 0; i < n; i++ {
		source := model.SourceClinic
		if i%2 == 1 {
			source = model.SourceListing
		}
		row := &model.SearchIndexRow{
			ID:         fmt.Sprintf("id-%03d", i),
			SourceType: source,
			Name:       fmt.Sprintf("Consultorio %03d", (i*7)%n),
			IsVerified: i%3 == 0,
			CreatedAt:  time.Now(),
		}
		if i%4 == 0 {
			row.SpecialtyIDs = []string{cardiologyID}
		}
		idx.rows = append(idx.rows, row)
	}
	return idx
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 4, ParsePage("4"))
	assert.Equal(t, MaxPage, ParsePage("9223372036854775807"))
	assert.Equal(t, 1, ParsePage("99999999999999999999"))
}

type filterRecorder struct {
	filters []model.SearchFilter
}

func (f *filterRecorder) Search(_ context.Context, filter model.SearchFilter) ([]*model.SearchIndexRow, int, error) {
	f.filters = append(f.filters, filter)
	return nil, 3, nil
}

func TestSearch_HugePageKeepsOffsetPositive(t *testing.T) {
	repo := &filterRecorder{}
	svc := NewService(repo, nil, nil)

	result := svc.Search(context.Background(), Query{Page: math.MaxInt})

	require.Len(t, repo.filters, 1)
	offset := repo.filters[0].Offset()
	assert.Positive(t, offset)
	assert.LessOrEqual(t, offset, math.MaxInt32)
	assert.Equal(t, MaxPage, result.Page)
	assert.Equal(t, 3, result.Total)
	assert.Empty(t, result.Cards)
}

func TestSearch_PagesPartitionResults(t *testing.T) {
	idx := seed(45)
	svc := NewService(idx, nil, nil)

	seen := map[string]bool{}
	var all []model.ClinicCard
	first := svc.Search(context.Background(), Query{Page: 1})
	require.Equal(t, 45, first.Total)
	require.Equal(t, 3, first.TotalPages)

	for page := 1; page <= first.TotalPages; page++ {
		res := svc.Search(context.Background(), Query{Page: page})
		assert.LessOrEqual(t, len(res.Cards), PageSize)
		for _, c := range res.Cards {
			assert.False(t, seen[c.Key], "card %s appears on two pages", c.Key)
			seen[c.Key] = true
		}
		all = append(all, res.Cards...)
	}
	assert.Len(t, all, 45)

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.IsVerified != cur.IsVerified {
			assert.True(t, prev.IsVerified, "verified cards come first")
			continue
		}
		assert.LessOrEqual(t, prev.Clinic.Name, cur.Clinic.Name)
	}

	empty := svc.Search(context.Background(), Query{Page: 9})
	assert.Empty(t, empty.Cards)
	assert.Equal(t, 45, empty.Total)
}

func TestSearch_FilterBySpecialty(t *testing.T) {
	idx := seed(20)
	svc := NewService(idx, fakeNamer{cardiologyID: "Cardiología"}, nil)

	res := svc.Search(context.Background(), Query{SpecialtyID: cardiologyID, Page: 1})
	assert.Equal(t, "Cardiología", res.SpecialtyName)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	for _, c := range res.Cards {
		assert.NotEmpty(t, c.Key)
	}

	res = svc.Search(context.Background(), Query{SpecialtyID: "unknown", Page: 1})
	assert.Equal(t, "", res.SpecialtyName)
	assert.Equal(t, 0, res.Total)
}

func TestSearch_ErrorDegradesToEmpty(t *testing.T) {
	repo := new(mocks.SearchRepository)
	repo.On("Search", mock.Anything, mock.Anything).Return(nil, 0, errors.New("relation does not exist"))
	m := metrics.New("test", nil)

	svc := NewService(repo, nil, m)
	res := svc.Search(context.Background(), Query{Page: 2})

	require.NotNil(t, res)
	assert.Empty(t, res.Cards)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchDegraded))
}

func TestSearch_PassesOffset(t *testing.T) {
	repo := new(mocks.SearchRepository)
	repo.On("Search", mock.Anything, model.SearchFilter{
		SpecialtyID: cardiologyID,
		Pagination:  model.Pagination{Page: 3, PageSize: PageSize},
	}).Return([]*model.SearchIndexRow{}, 41, nil)

	svc := NewService(repo, nil, nil)
	res := svc.Search(context.Background(), Query{SpecialtyID: cardiologyID, Page: 3})
	assert.Equal(t, 3, res.TotalPages)
	repo.AssertExpectations(t)
}

func TestToCard_Defaults(t *testing.T) {
	slug := "clinica-sol"
	label := "Cardiología"
	row := &model.SearchIndexRow{
		ID:             "5b7c0f3e-2a1d-4b8e-9c6f-0d1e2f3a4b5c",
		SourceType:     model.SourceClinic,
		Name:           "Clínica Sol",
		Slug:           &slug,
		IsVerified:     true,
		SpecialtyLabel: &label,
		Doctors:        model.DoctorSummaries{{ID: "d1", FullName: "Ana Soto"}},
	}

	card := ToCard(row)
	assert.Equal(t, "CONSULTORIO-5b7c0f3e-2a1d-4b8e-9c6f-0d1e2f3a4b5c", card.Key)
	assert.Equal(t, DefaultAppointmentMinutes, card.Clinic.AppointmentDuration)
	assert.Equal(t, "09:00", card.Clinic.OpeningTime)
	assert.Equal(t, "18:00", card.Clinic.ClosingTime)
	assert.Equal(t, "#0e7490", card.Clinic.ThemeColor)
	assert.Equal(t, model.CategoryGeneralMedicine, card.Clinic.Category)
	assert.Nil(t, card.Clinic.Phone)
	assert.Nil(t, card.Clinic.TaxID)
	assert.Equal(t, "Cardiología", card.DisplayLabel())
	assert.Equal(t, "/consultorio/clinica-sol", card.Href())
	assert.Len(t, card.Doctors, 1)

	bare := ToCard(&model.SearchIndexRow{ID: "x", SourceType: model.SourceListing, Name: "Dr. Pérez"})
	assert.NotNil(t, bare.Doctors)
	assert.Equal(t, "Medicina General", bare.DisplayLabel())
	assert.Equal(t, "", bare.Href())
}
