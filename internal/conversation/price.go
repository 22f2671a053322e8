package conversation

import (
	"strconv"
	"strings"
)

// ParsePrice reads a cost estimate in whole dollars. "unknown", empty and
// unparseable input all yield 0. Signs are stripped with the other
// non-digits, so the result is never negative.
func ParsePrice(text string) int {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "unknown" {
		return 0
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return value
}
