package validation

import (
	"fmt"
	"net/url"
	"strings"

	"campaign-api/internal/core/domain"
)

var (
	allowedSchemes  = []string{"http://", "https://"}
	allowedSuffixes = []string{".com", ".org", ".net", ".edu"}
)

// NormalizeURL turns a landing URL into an absolute one. A missing scheme
// becomes "https://www." and a URL not ending in one of the accepted
// top-level suffixes gets ".com" appended. The result must parse with both
// a scheme and a host. Applying NormalizeURL to its own output is a no-op.
func NormalizeURL(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if !hasAnyPrefix(u, allowedSchemes) {
		u = "https://www." + u
	}
	if !hasAnySuffix(u, allowedSuffixes) {
		u += ".com"
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return u, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, sfx := range suffixes {
		if strings.HasSuffix(s, sfx) {
			return true
		}
	}
	return false
}
