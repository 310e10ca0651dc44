// Package pagination turns page/limit query parameters into LIMIT/OFFSET values.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Page struct {
	Limit  int
	Offset int
}

// Resolve applies defaults to absent values. Non-positive values count as
// absent. An offset that would overflow int is clamped to math.MaxInt, which
// still yields an empty page from the store.
func Resolve(page, limit *int) Page {
	p, l := DefaultPage, DefaultLimit
	if page != nil && *page > 0 {
		p = *page
	}
	if limit != nil && *limit > 0 {
		l = *limit
	}

	return Page{Limit: l, Offset: offset(p, l)}
}

func offset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

// FromQuery reads page and limit from q. Values that are not integers are
// ignored.
func FromQuery(q url.Values) Page {
	return Resolve(intParam(q, "page"), intParam(q, "limit"))
}

func intParam(q url.Values, key string) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &v
}
