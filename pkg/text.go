package pkg

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	nonSlug  = regexp.MustCompile("[^a-z0-9]+")
	nonKey   = regexp.MustCompile("[^a-z0-9_-]+")
	htmlTag  = regexp.MustCompile(`<[^>]*>`)
	hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{3}){1,2}$`)
)

// Slugify lowercases s and collapses every run of other characters into a dash.
func Slugify(s string) string {
	slug := strings.ToLower(StripTags(s))
	slug = nonSlug.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SanitizeKey keeps lowercase alphanumerics, dashes and underscores.
func SanitizeKey(s string) string {
	return nonKey.ReplaceAllString(strings.ToLower(s), "")
}

func StripTags(s string) string {
	return htmlTag.ReplaceAllString(s, "")
}

// SanitizeTextField strips tags and collapses whitespace, including newlines.
func SanitizeTextField(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}

// SanitizeHexColor returns s when it is a 3 or 6 digit hex color, else "".
func SanitizeHexColor(s string) string {
	if hexColor.MatchString(s) {
		return s
	}
	return ""
}

var allowedSchemes = map[string]bool{
	"":       true,
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
	"ftp":    true,
}

// SanitizeURL drops URLs that do not parse or use a disallowed scheme.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return ""
	}
	return raw
}

// TrimWords keeps the first n words of text and appends more when it cut anything.
func TrimWords(text string, n int, more string) string {
	words := strings.Fields(StripTags(text))
	if len(words) > n {
		return strings.Join(words[:n], " ") + more
	}
	return strings.Join(words, " ")
}

// IsBlank reports whether a submitted value counts as empty ("" or "0").
func IsBlank(v string) bool {
	return v == "" || v == "0"
}
