package domain

import (
	"fmt"
	"regexp"
)

var battleTagPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+#[0-9]{4,5}$`)

// ValidateBattleTag accepts Name#1234 style tags, including non-Latin names.
func ValidateBattleTag(tag string) error {
	if !battleTagPattern.MatchString(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidBattleTag, tag)
	}
	return nil
}
