// Package pagination tracks keyset paging state for the test plan list.
//
// The state round-trips through query parameters (after, prev, per, filter) so
// a saved or shared query reopens the same page.
package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// DefaultPerPage is the page size when none is given
const DefaultPerPage = 4

// Query parameter names
const (
	ParamAfter  = "after"
	ParamPrev   = "prev"
	ParamPer    = "per"
	ParamFilter = "filter"
)

// Cursor is the keyset position in the plan list.
// After is the ID the current page starts after; Prev is the single remembered
// earlier cursor, kept so one step back returns to where paging began.
type Cursor struct {
	After  *int   `json:"after,omitempty"`
	Prev   *int   `json:"prev,omitempty"`
	Per    int    `json:"per"`
	Filter string `json:"filter,omitempty"`
}

// New returns a first-page cursor with the given page size
func New(per int) Cursor {
	if per <= 0 {
		per = DefaultPerPage
	}
	return Cursor{Per: per}
}

// FromQuery reads a cursor from query parameters. Missing or unparsable
// cursors are treated as unset and a bad page size falls back to the default.
func FromQuery(q url.Values) Cursor {
	c := Cursor{
		After:  parseID(q.Get(ParamAfter)),
		Prev:   parseID(q.Get(ParamPrev)),
		Filter: strings.TrimSpace(q.Get(ParamFilter)),
	}
	if per, err := strconv.Atoi(q.Get(ParamPer)); err == nil && per > 0 {
		c.Per = per
	} else {
		c.Per = DefaultPerPage
	}
	return c
}

// Query encodes the cursor; unset cursors and an empty filter are omitted
func (c Cursor) Query() url.Values {
	q := url.Values{}
	if c.After != nil {
		q.Set(ParamAfter, strconv.Itoa(*c.After))
	}
	if c.Prev != nil {
		q.Set(ParamPrev, strconv.Itoa(*c.Prev))
	}
	q.Set(ParamPer, strconv.Itoa(c.per()))
	if c.Filter != "" {
		q.Set(ParamFilter, c.Filter)
	}
	return q
}

// PlanQuery converts the cursor into a backend request
func (c Cursor) PlanQuery() api.PlanQuery {
	return api.PlanQuery{After: c.After, Per: c.per(), Filter: c.Filter}
}

// Next advances past the last plan of page. An empty page leaves the cursor as is.
// The first advance remembers the starting cursor in Prev; later advances keep it.
func (c Cursor) Next(page []models.TestPlan) Cursor {
	if len(page) == 0 {
		return c
	}
	lastID := page[len(page)-1].ID
	if c.Prev == nil {
		c.Prev = c.After
	}
	c.After = &lastID
	return c
}

// Previous steps back to the remembered cursor, or to the first page when none is remembered
func (c Cursor) Previous() Cursor {
	if c.Prev != nil {
		c.After = c.Prev
		c.Prev = nil
		return c
	}
	c.After = nil
	return c
}

// SetFilter sets the tag filter and returns to the first page
func (c Cursor) SetFilter(tag string) Cursor {
	c.Filter = strings.TrimSpace(tag)
	c.After = nil
	c.Prev = nil
	return c
}

// Reset returns to the first page with the default page size and no filter
func (c Cursor) Reset() Cursor {
	return New(DefaultPerPage)
}

// HasPrevious reports whether a previous page can be requested
func (c Cursor) HasPrevious() bool {
	return c.After != nil || c.Prev != nil
}

// HasNext reports whether a page of n plans may be followed by another.
// A short page is the last one.
func (c Cursor) HasNext(n int) bool {
	return n > 0 && n >= c.per()
}

// IsFirstPage reports whether the cursor points at the start of the list
func (c Cursor) IsFirstPage() bool {
	return c.After == nil
}

func (c Cursor) per() int {
	if c.Per <= 0 {
		return DefaultPerPage
	}
	return c.Per
}

func parseID(s string) *int {
	if s == "" {
		return nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &id
}
