package specialty

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/cache"
	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository"
	"github.com/jwalitptl/directory-web/pkg/metrics"
)

const catalogueKey = "especialidades:all"

type SpecialtyServicer interface {
	List(ctx context.Context) ([]*model.Specialty, error)
	Name(ctx context.Context, id string) (string, error)
}

// Service serves the specialty catalogue, which changes rarely, from cache.
type Service struct {
	repo    repository.SpecialtyRepository
	cache   cache.Store
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewService(repo repository.SpecialtyRepository, store cache.Store, ttl time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   store,
		ttl:     ttl,
		metrics: m,
	}
}

// List returns every specialty ordered by name.
func (s *Service) List(ctx context.Context) ([]*model.Specialty, error) {
	if s.cache != nil {
		var cached []*model.Specialty
		ok, err := s.cache.Get(ctx, catalogueKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("specialty cache read failed")
		}
		s.metrics.IncCache("specialties", ok)
		if ok {
			return cached, nil
		}
	}

	specialties, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogueKey, specialties, s.ttl); err != nil {
			log.Warn().Err(err).Msg("specialty cache write failed")
		}
	}
	return specialties, nil
}

// Name resolves a specialty id to its name, or "" when the id is unknown.
func (s *Service) Name(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	specialties, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	for _, sp := range specialties {
		if sp.ID.String() == id {
			return sp.Name, nil
		}
	}
	return "", nil
}

