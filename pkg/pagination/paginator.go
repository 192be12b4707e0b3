// Package pagination slices ordered result sets into fixed-size pages.
//
// Page numbers are 1-based. A missing, non-numeric or below-one page number
// selects the first page; a number past the end selects the last page, so a
// request never fails because of its page parameter.
package pagination

import (
	"strconv"
	"strings"
)

// DefaultPerPage matches the site-wide posts-per-page setting.
const DefaultPerPage = 10

// Paginator knows the total size of a result set and its page size.
type Paginator struct {
	count   int64
	perPage int
}

// Page describes one resolved page.
type Page struct {
	Number         int   `json:"number"`
	PerPage        int   `json:"per_page"`
	NumPages       int   `json:"num_pages"`
	Count          int64 `json:"count"`
	HasNext        bool  `json:"has_next"`
	HasPrevious    bool  `json:"has_previous"`
	NextNumber     int   `json:"next_page_number,omitempty"`
	PreviousNumber int   `json:"previous_page_number,omitempty"`
}

// New builds a paginator. perPage below one falls back to DefaultPerPage.
func New(count int64, perPage int) *Paginator {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if count < 0 {
		count = 0
	}
	return &Paginator{count: count, perPage: perPage}
}

// NumPages is never below one: an empty set still has an (empty) first page.
func (p *Paginator) NumPages() int {
	if p.count == 0 {
		return 1
	}
	return int((p.count + int64(p.perPage) - 1) / int64(p.perPage))
}

// GetPage resolves a raw query-string value.
func (p *Paginator) GetPage(raw string) Page {
	return p.Page(ParseNumber(raw))
}

// Page clamps number into [1, NumPages].
func (p *Paginator) Page(number int) Page {
	last := p.NumPages()
	if number < 1 {
		number = 1
	}
	if number > last {
		number = last
	}
	pg := Page{
		Number:      number,
		PerPage:     p.perPage,
		NumPages:    last,
		Count:       p.count,
		HasNext:     number < last,
		HasPrevious: number > 1,
	}
	if pg.HasNext {
		pg.NextNumber = number + 1
	}
	if pg.HasPrevious {
		pg.PreviousNumber = number - 1
	}
	return pg
}

// Offset of the first item on the page.
func (pg Page) Offset() int { return (pg.Number - 1) * pg.PerPage }

// Limit is the page size.
func (pg Page) Limit() int { return pg.PerPage }

// Bounds returns the half-open [start, end) item range of the page.
func (pg Page) Bounds() (start, end int) {
	start = pg.Offset()
	end = start + pg.PerPage
	if int64(end) > pg.Count {
		end = int(pg.Count)
	}
	if start > end {
		start = end
	}
	return start, end
}

// ParseNumber returns the page number in raw, or 1 when raw is not a positive integer.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Slice paginates an in-memory, already ordered slice.
func Slice[T any](items []T, perPage int, raw string) ([]T, Page) {
	pg := New(int64(len(items)), perPage).GetPage(raw)
	start, end := pg.Bounds()
	return items[start:end], pg
}
