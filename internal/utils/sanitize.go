package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from user-supplied free text. Child notes end up
// inside the scoring-oracle prompt and product descriptions are rendered by
// the storefront, so neither may carry HTML.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
