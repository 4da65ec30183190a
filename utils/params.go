package utils

import (
	"net/http"
	"strconv"
)

type QueryOptions struct {
	Minimal  bool
	Enriched bool
	Category string
	Brand    string
	Search   string
	Limit    int
	Offset   int
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	return QueryOptions{
		Minimal:  q.Get("minimal") == "true",
		Enriched: q.Get("enriched") == "true",
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Search:   q.Get("search"),
		Limit:    limit,
		Offset:   offset,
	}
}
