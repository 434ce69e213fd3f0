package configuration

import (
	"github.com/xy-planning-network/hostcfg"
)

const (
	// DefaultOffset is the offset of a Query leaving it unset.
	DefaultOffset = 0

	// DefaultLimit is the limit of a Query leaving it unset.
	DefaultLimit = 20
)

// A Page is a window onto a User's sorted Configurations.
type Page struct {
	// Configs holds the Configurations in the window.
	Configs []hostcfg.Configuration `json:"configs"`

	// Offset is the effective offset of the window.
	Offset int `json:"offset"`

	// Limit is the largest the window could be.
	Limit int `json:"limit"`

	// Of counts every Configuration the window is onto.
	Of int `json:"of"`
}

// A Query narrows and orders the Configurations Store.Get returns.
//
// Nil Offset and Limit fall back to DefaultOffset and DefaultLimit.
type Query struct {
	Sort   string `schema:"sort"`
	Offset *int   `schema:"offset"`
	Limit  *int   `schema:"limit"`
}

// Window resolves the offset and limit of q, applying defaults.
func (q Query) Window() (offset, limit int) {
	offset, limit = DefaultOffset, DefaultLimit
	if q.Offset != nil {
		offset = *q.Offset
	}

	if q.Limit != nil {
		limit = *q.Limit
	}

	return offset, limit
}

// Paginate cuts from cfgs at most limit Configurations, starting at offset.
//
// A negative offset counts as zero; an offset past the end yields an empty Page.
// A limit below one fails with ErrInvalidLimit.
func Paginate(cfgs []hostcfg.Configuration, offset, limit int) (Page, error) {
	if limit < 1 {
		return Page{}, hostcfg.Errorf(hostcfg.ErrInvalidLimit, "Limit must be at least 1")
	}

	offset = max(offset, 0)
	start := min(offset, len(cfgs))
	end := len(cfgs)
	if limit < end-start {
		end = start + limit
	}

	page := make([]hostcfg.Configuration, end-start)
	copy(page, cfgs[start:end])

	return Page{Configs: page, Offset: offset, Limit: limit, Of: len(cfgs)}, nil
}
