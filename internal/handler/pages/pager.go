package pages

import (
	"net/url"
	"strconv"
)

// PageLink is one numbered pagination link.
type PageLink struct {
	Number  int
	Href    string
	Current bool
}

// Pager is the pagination bar of the search page. Prev and Next are empty
// when there is no page in that direction.
type Pager struct {
	Prev        string
	Next        string
	First       *PageLink
	LeadingGap  bool
	Pages       []PageLink
	TrailingGap bool
	Last        *PageLink
}

// NewPager builds links for current out of total pages, keeping the other
// query parameters. It returns nil when there is at most one page. A current
// page past the end is anchored at the last page.
func NewPager(path string, query url.Values, current, total int) *Pager {
	if total <= 1 {
		return nil
	}
	if current > total {
		current = total
	}
	if current < 1 {
		current = 1
	}

	href := func(n int) string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(n))
		return path + "?" + q.Encode()
	}
	link := func(n int) *PageLink {
		return &PageLink{Number: n, Href: href(n)}
	}

	p := &Pager{}
	if current > 1 {
		p.Prev = href(current - 1)
	}
	if current < total {
		p.Next = href(current + 1)
	}

	if current > 2 {
		p.First = link(1)
	}
	p.LeadingGap = current > 3

	if current > 1 {
		p.Pages = append(p.Pages, *link(current - 1))
	}
	p.Pages = append(p.Pages, PageLink{Number: current, Href: href(current), Current: true})
	if current < total {
		p.Pages = append(p.Pages, *link(current + 1))
	}

	p.TrailingGap = current < total-2
	if current < total-1 {
		p.Last = link(total)
	}
	return p
}
