package employee

import (
	"strings"
	"unicode/utf8"
)

const (
	finNricMaskThreshold    = 5
	workPermitMaskThreshold = 4
	visibleSuffix           = 4
)

// MaskFinNric hides the interior of a national ID. IDs of five characters
// or fewer have no masked form and yield an empty string.
func MaskFinNric(value string) string {
	if utf8.RuneCountInString(value) <= finNricMaskThreshold {
		return ""
	}

	return strings.ToUpper(maskInterior(value))
}

// MaskWorkPermit hides the interior of a work permit number. Numbers of four
// characters or fewer are returned unchanged.
func MaskWorkPermit(value string) string {
	if utf8.RuneCountInString(value) <= workPermitMaskThreshold {
		return value
	}

	return maskInterior(value)
}

func maskInterior(value string) string {
	runes := []rune(value)
	for i := 1; i < len(runes)-visibleSuffix; i++ {
		runes[i] = 'X'
	}

	return string(runes)
}
