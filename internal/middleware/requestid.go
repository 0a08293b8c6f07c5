package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIdHeader = "X-Request-Id"

// RequestId tags every request with an id for log correlation.
// An id provided by an upstream proxy is kept.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIdHeader, id)
		next.ServeHTTP(w, r)
	})
}
