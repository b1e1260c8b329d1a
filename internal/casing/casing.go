package casing

import (
	"regexp"
	"strings"
)

var (
	wordBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnake converts a camelCase or PascalCase identifier to snake_case.
// Acronym runs stay together: "ARNCode" becomes "arn_code".
func ToSnake(s string) string {
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
