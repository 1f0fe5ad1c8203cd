package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips markup from user supplied text. Portal content is plain
// text; anything resembling HTML is removed rather than escaped.
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
