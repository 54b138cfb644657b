package restaurants

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

/*
	Slug / public URL helpers
	-------------------------
	- Responsible ONLY for:
	  • generating restaurant slugs
	  • building the public (QR) menu URL
	- No access logic, no billing logic here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe base slug from a restaurant name.
// Example: "Chez Marie's Bistro" -> "chez-maries-bistro"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "menu"
	}
	return base
}

// NewSlug appends a short random suffix so two restaurants with the same
// name never collide on the unique index.
func NewSlug(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return MakeSlug(name) + "-" + suffix
}

// BuildPublicURL builds the public menu URL encoded into the QR code.
// Example: ("https://menu.example.com", "chez-marie-1a2b3c") -> "https://menu.example.com/m/chez-marie-1a2b3c"
func BuildPublicURL(appURL, slug string) string {
	return strings.TrimRight(appURL, "/") + "/m/" + slug
}
