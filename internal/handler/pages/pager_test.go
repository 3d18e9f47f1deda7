package pages

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(p *Pager) []int {
	out := []int{}
	for _, l := range p.Pages {
		out = append(out, l.Number)
	}
	return out
}

func TestNewPager_HiddenForSinglePage(t *testing.T) {
	assert.Nil(t, NewPager("/buscar", nil, 1, 0))
	assert.Nil(t, NewPager("/buscar", nil, 1, 1))
}

func TestNewPager_FirstPage(t *testing.T) {
	p := NewPager("/buscar", url.Values{}, 1, 5)
	require.NotNil(t, p)

	assert.Empty(t, p.Prev)
	assert.Equal(t, "/buscar?page=2", p.Next)
	assert.Nil(t, p.First)
	assert.False(t, p.LeadingGap)
	assert.Equal(t, []int{1, 2}, numbers(p))
	assert.True(t, p.Pages[0].Current)
	assert.True(t, p.TrailingGap)
	require.NotNil(t, p.Last)
	assert.Equal(t, 5, p.Last.Number)
}

func TestNewPager_Middle(t *testing.T) {
	q := url.Values{"especialidad": {"abc"}, "page": {"5"}}
	p := NewPager("/buscar", q, 5, 9)
	require.NotNil(t, p)

	assert.Equal(t, "/buscar?especialidad=abc&page=4", p.Prev)
	assert.Equal(t, "/buscar?especialidad=abc&page=6", p.Next)
	require.NotNil(t, p.First)
	assert.Equal(t, "/buscar?especialidad=abc&page=1", p.First.Href)
	assert.True(t, p.LeadingGap)
	assert.Equal(t, []int{4, 5, 6}, numbers(p))
	assert.True(t, p.TrailingGap)
	assert.Equal(t, 9, p.Last.Number)
	assert.Equal(t, []string{"5"}, q["page"], "input query is not modified")
}

func TestNewPager_LastPage(t *testing.T) {
	p := NewPager("/buscar", url.Values{}, 3, 3)
	require.NotNil(t, p)

	assert.Equal(t, "/buscar?page=2", p.Prev)
	assert.Empty(t, p.Next)
	require.NotNil(t, p.First)
	assert.False(t, p.LeadingGap)
	assert.Equal(t, []int{2, 3}, numbers(p))
	assert.False(t, p.TrailingGap)
	assert.Nil(t, p.Last)
}

func TestNewPager_PastTheEnd(t *testing.T) {
	p := NewPager("/buscar", url.Values{"page": {"10"}}, 10, 3)
	require.NotNil(t, p)

	assert.Equal(t, "/buscar?page=2", p.Prev)
	assert.Empty(t, p.Next)
	assert.Equal(t, []int{2, 3}, numbers(p))
	assert.True(t, p.Pages[1].Current)
	for _, l := range p.Pages {
		assert.LessOrEqual(t, l.Number, 3)
	}
	require.NotNil(t, p.First)
	assert.Equal(t, 1, p.First.Number)
	assert.Nil(t, p.Last)
}
