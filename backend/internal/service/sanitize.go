package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// User-supplied text goes through the strict policy before storage: titles and
// descriptions are plain text, any markup is stripped.
var textPolicy = bluemonday.StrictPolicy()

func sanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
