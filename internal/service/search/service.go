package search

import (
	"context"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
	"github.com/jwalitptl/directory-web/pkg/metrics"
)

// PageSize is the fixed number of cards per results page.
const PageSize = 20

// MaxPage keeps the row offset inside a Postgres integer.
const MaxPage = math.MaxInt32 / PageSize

type SearchServicer interface {
	Search(ctx context.Context, q Query) *Result
}

type SpecialtyNamer interface {
	Name(ctx context.Context, id string) (string, error)
}

type Query struct {
	SpecialtyID string
	Page        int
}

// Result is one page of cards. SpecialtyName is set only when the filter
// resolved to a known specialty.
type Result struct {
	Cards         []model.ClinicCard
	Total         int
	Page          int
	TotalPages    int
	SpecialtyID   string
	SpecialtyName string
}

type Service struct {
	repo        repository.SearchRepository
	specialties SpecialtyNamer
	metrics     *metrics.Metrics
}

func NewService(repo repository.SearchRepository, specialties SpecialtyNamer, m *metrics.Metrics) *Service {
	return &Service{
		repo:        repo,
		specialties: specialties,
		metrics:     m,
	}
}

// ParsePage reads the page query parameter. Anything that is not a positive
// integer is page 1; larger pages are capped at MaxPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// Search never fails. A store error is logged and answered with an empty page.
func (s *Service) Search(ctx context.Context, q Query) *Result {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	result := &Result{
		Cards:       []model.ClinicCard{},
		Page:        q.Page,
		SpecialtyID: q.SpecialtyID,
	}

	if q.SpecialtyID != "" && s.specialties != nil {
		name, err := s.specialties.Name(ctx, q.SpecialtyID)
		if err != nil {
			log.Error().Err(err).Str("especialidad", q.SpecialtyID).Msg("failed to resolve specialty name")
		}
		result.SpecialtyName = name
	}

	filter := model.SearchFilter{
		SpecialtyID: q.SpecialtyID,
		Pagination:  model.Pagination{Page: q.Page, PageSize: PageSize},
	}
	rows, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		log.Error().Err(err).
			Str("especialidad", q.SpecialtyID).
			Int("page", q.Page).
			Msg("Error fetching search results")
		s.metrics.IncSearchDegraded()
		return result
	}

	for _, row := range rows {
		result.Cards = append(result.Cards, ToCard(row))
	}
	result.Total = total
	result.TotalPages = filter.TotalPages(total)
	return result
}
