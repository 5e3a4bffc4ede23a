package render

import "strings"

// fallbackBase names the download when no usable characters remain.
const fallbackBase = "resume"

// Filename derives the deterministic download name for an export:
// the full name lower-cased with every run of characters outside [a-z0-9]
// collapsed to a single underscore, trimmed at both ends, suffixed with
// "_resume.<ext>". A name with nothing usable becomes just "resume.<ext>",
// without the suffix doubling the token.
func Filename(fullName, ext string) string {
	base := sanitizeBase(fullName)
	if base == "" {
		return fallbackBase + "." + ext
	}
	return base + "_resume." + ext
}

func sanitizeBase(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}
