package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// Page is the envelope returned by list endpoints.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// newSearchParams reads the "search" and "page" query arguments.
func newSearchParams(r *http.Request, size int) (internal.SearchParams, error) {
	q := r.URL.Query()

	page := 1

	if v := q.Get("page"); v != "" {
		var err error

		if page, err = strconv.Atoi(v); err != nil {
			return internal.SearchParams{}, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "invalid page")
		}
	}

	return internal.SearchParams{
		Term: q.Get("search"),
		Page: page,
		Size: size,
	}, nil
}

// newPage builds the envelope for results, next and previous link to the neighbouring pages of the
// same request keeping every other query argument.
func newPage[T any](r *http.Request, args internal.SearchParams, total int64, results []T) Page[T] {
	res := Page[T]{
		Count:   total,
		Results: results,
	}

	if int64(args.Page*args.Size) < total {
		res.Next = pageURL(r.URL, args.Page+1)
	}

	if args.Page > 1 {
		res.Previous = pageURL(r.URL, args.Page-1)
	}

	return res
}

// pageURL returns the path and query of u pointing to page, the first page omits the argument.
func pageURL(u *url.URL, page int) *string {
	q := u.Query()

	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	} else {
		q.Del("page")
	}

	res := url.URL{Path: u.Path, RawQuery: q.Encode()}
	s := res.String()

	return &s
}
