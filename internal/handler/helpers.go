package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func parseIntParam(value, name string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return parsed, nil
}

// idParam extracts a numeric id from the route.
func idParam(r *http.Request, name string) (int64, error) {
	return parseIntParam(chi.URLParam(r, name), name)
}

// dateRange parses from/to query params (YYYY-MM-DD), defaulting to
// the trailing defaultDays window ending now.
func dateRange(r *http.Request, defaultDays int) (time.Time, time.Time) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultDays)
	to := now

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			from = t
		}
	}
	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			// inclusive end of day
			to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}
	return from, to
}
