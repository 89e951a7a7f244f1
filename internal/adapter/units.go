package adapter

import (
	"regexp"
	"strconv"
)

// UnitAgnostic marks content that belongs to no particular unit, such as exam
// papers.
const UnitAgnostic = 0

// DefaultUnit is assumed when a page gives no unit hint.
const DefaultUnit = 1

var unitPattern = regexp.MustCompile(`(?i)\bunit[\s:.–-]*(\d{1,2})\b`)

// InferUnit extracts a unit number from free text like "Unit 3: Trees",
// "unit-2 notes" or "UNIT 4". Returns fallback when no pattern matches.
// The inference is heuristic; only the pattern matching itself is testable.
func InferUnit(text string, fallback int) int {
	m := unitPattern.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
