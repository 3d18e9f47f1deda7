package specialty

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/directory-web/internal/cache"
	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository/mocks"
)

func catalogue() []*model.Specialty {
	return []*model.Specialty{
		{Base: model.Base{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111")}, Name: "Cardiología"},
		{Base: model.Base{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222")}, Name: "Pediatría"},
	}
}

func TestList_CachesCatalogue(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.SpecialtyRepository)
	repo.On("List", mock.Anything).Return(catalogue(), nil).Once()

	svc := NewService(repo, cache.NewMemoryStore(time.Minute, time.Minute), time.Minute, nil)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.Equal(t, first[1].ID, second[1].ID)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestList_WithoutCache(t *testing.T) {
	repo := new(mocks.SpecialtyRepository)
	repo.On("List", mock.Anything).Return(catalogue(), nil)

	svc := NewService(repo, nil, 0, nil)
	_, _ = svc.List(context.Background())
	_, _ = svc.List(context.Background())
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestList_RepositoryError(t *testing.T) {
	repo := new(mocks.SpecialtyRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewService(repo, nil, 0, nil)
	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	repo := new(mocks.SpecialtyRepository)
	repo.On("List", mock.Anything).Return(catalogue(), nil)
	svc := NewService(repo, nil, 0, nil)

	name, err := svc.Name(context.Background(), "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	assert.Equal(t, "Pediatría", name)

	name, err = svc.Name(context.Background(), "33333333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	assert.Equal(t, "", name)

	name, err = svc.Name(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}
