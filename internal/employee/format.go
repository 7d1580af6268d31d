package employee

import (
	"regexp"
	"strings"
	"time"
)

const DisplayDateLayout = "02/01/2006"

var wordPattern = regexp.MustCompile(`\w\S*`)

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(name string) string {
	return wordPattern.ReplaceAllStringFunc(name, func(word string) string {
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	})
}

// FormatDate renders a date as DD/MM/YYYY, or "" when absent. Dates are
// stored as UTC midnight and read back in UTC.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(DisplayDateLayout)
}

func ActiveLabel(isActive int) string {
	if isActive == 1 {
		return "Active"
	}

	return "InActive"
}

// ApprovalStatus is 1 when the employee has certificates and all of them are
// approved.
func ApprovalStatus(total, approved int) int {
	if total > 0 && total == approved {
		return 1
	}

	return 0
}

// DisplayName picks the first non-empty of the employee's own project title,
// the title of the company's project and the subcontractor name.
func DisplayName(projectTitle, companyProjectTitle, subconName *string) string {
	for _, candidate := range []*string{projectTitle, companyProjectTitle, subconName} {
		if v := Deref(candidate); v != "" {
			return v
		}
	}

	return ""
}

func Deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// FirstNonEmpty returns the first argument that is not empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
