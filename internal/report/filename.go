package report

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExportFilename builds a download filename for an exported report:
// "wcag-audit-<client>-<yyyy-mm-dd>.<ext>". The client name is folded to
// lowercase ASCII (accents stripped, other characters become hyphens) so
// the name is safe across filesystems and Content-Disposition headers.
// A blank client name becomes "unnamed".
func ExportFilename(clientName string, created time.Time, ext string) string {
	slug := slugify(clientName)
	if slug == "" {
		slug = "unnamed"
	}
	return "wcag-audit-" + slug + "-" + created.Format("2006-01-02") + "." + ext
}

// asciiFold decomposes characters and strips combining marks, so "é"
// becomes "e" rather than being dropped.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
