package configuration

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// ValidatePatterns ensures that each pattern is a non-empty, well-formed
// doublestar pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if pattern == "" {
			return errors.New("empty exclusion pattern")
		} else if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclusion pattern: %s", pattern)
		}
	}
	return nil
}

// MatchAny returns whether or not name matches any of the specified patterns.
// Patterns are expected to have been checked by ValidatePatterns.
func MatchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if match, _ := doublestar.Match(pattern, name); match {
			return true
		}
	}
	return false
}
