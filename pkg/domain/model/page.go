package model

import (
	"math"
	"strconv"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50

	// MaxPage keeps Page*Limit within int
	MaxPage = math.MaxInt / MaxPageLimit
)

// Page is a zero-based page of a listing, newest first
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPage clamps page to [0, MaxPage] and limit to (0, MaxPageLimit]. A non-positive
// limit falls back to DefaultPageLimit.
func NewPage(page, limit int) Page {
	switch {
	case page < 0:
		page = 0
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case limit <= 0:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

// ParsePage reads page and limit query values; unparsable values use defaults.
func ParsePage(page, limit string) Page {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = 0
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = DefaultPageLimit
	}
	return NewPage(p, l)
}

// Offset saturates at math.MaxInt and is never negative
func (x Page) Offset() int {
	if x.Page <= 0 || x.Limit <= 0 {
		return 0
	}
	if x.Page > math.MaxInt/x.Limit {
		return math.MaxInt
	}
	return x.Page * x.Limit
}

// Slice returns the page window of n items as [start, end)
func (x Page) Slice(n int) (int, int) {
	start := x.Offset()
	if start < 0 || start > n {
		start = n
	}
	end := n
	if x.Limit > 0 && x.Limit < n-start {
		end = start + x.Limit
	}
	return start, end
}
