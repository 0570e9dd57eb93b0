package archive

import (
	"regexp"
	"strings"
)

const maxSlugLen = 50

var (
	transliterations = strings.NewReplacer(
		"ä", "ae",
		"ö", "oe",
		"ü", "ue",
		"ß", "ss",
	)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a title into a filename-safe slug: lowercase, German
// umlauts transliterated to ASCII, every run of other non-alphanumeric
// characters collapsed to a single hyphen, leading and trailing hyphens
// trimmed, capped at 50 characters.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = transliterations.Replace(slug)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}
