package catalog

import (
	"regexp"
	"strconv"
)

// CriterionNumber is a parsed dotted WCAG success criterion number,
// e.g. 1.3.4. Components compare numerically, never lexicographically:
// 1.3.4 sorts before 2.1.1, and 1.4.10 sorts after 1.4.3.
type CriterionNumber struct {
	Major int
	Minor int
	Patch int
}

// criterionNumberRe matches a leading dotted number such as "1.3.4" in
// "1.3.4 Orientation".
var criterionNumberRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// ParseCriterionNumber extracts the leading dotted number from s.
// The boolean is false when s does not start with a dotted number
// (e.g. basic checklist display names).
func ParseCriterionNumber(s string) (CriterionNumber, bool) {
	m := criterionNumberRe.FindStringSubmatch(s)
	if m == nil {
		return CriterionNumber{}, false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return CriterionNumber{Major: major, Minor: minor, Patch: patch}, true
}

// Less reports whether n sorts before o.
func (n CriterionNumber) Less(o CriterionNumber) bool {
	if n.Major != o.Major {
		return n.Major < o.Major
	}
	if n.Minor != o.Minor {
		return n.Minor < o.Minor
	}
	return n.Patch < o.Patch
}

// String returns the dotted form, e.g. "1.3.4".
func (n CriterionNumber) String() string {
	return strconv.Itoa(n.Major) + "." + strconv.Itoa(n.Minor) + "." + strconv.Itoa(n.Patch)
}
