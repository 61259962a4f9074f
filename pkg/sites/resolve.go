package sites

import (
	"net/url"
	"strings"
)

// resolveURL resolves href against base. Absolute hrefs are returned unchanged;
// an href that cannot be parsed yields "".
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if parsed.IsAbs() || base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}

// ResolveURL is resolveURL over a string base.
func ResolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return resolveURL(b, href)
}
