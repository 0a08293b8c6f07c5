package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

// Strict policy: user-supplied text is stored and served as plain
// text, any markup is stripped before it hits storage.
var sanitizePolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}

// sanitizeRequired strips markup and rejects input that is empty
// afterwards (e.g. a body consisting only of tags).
func sanitizeRequired(s, field string) (string, error) {
	clean := sanitizeText(s)
	if clean == "" {
		return "", &internal_errors.ValidationError{Message: field + " must not be empty"}
	}
	return clean, nil
}
