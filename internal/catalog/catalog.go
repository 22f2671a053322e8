// Package catalog holds the fixed, ordered list of project categories shown
// to users when they report something that needs fixing.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

const callbackPrefix = "cat:"

// ButtonsPerRow is how many categories share a row in the choice menu.
const ButtonsPerRow = 2

var labels = []string{
	"🪔 Temple & Altar",
	"🏠 Guest Rooms",
	"🚿 Bathrooms",
	"🍽️ Kitchen",
	"🌱 Garden & Grounds",
	"🔧 Plumbing",
	"⚡ Electrical",
	"🏗️ Structure & Walls",
	"🚰 Water & Drainage",
	"🛤️ Paths & Roads",
	"📦 Storage",
	"🔒 Security",
	"🌿 Other",
}

var leadingNonWord = regexp.MustCompile(`^[^\w]+`)

func Len() int {
	return len(labels)
}

// Labels returns a copy of the catalog in display order.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Label returns the display label at index.
func Label(index int) (string, error) {
	if index < 0 || index >= len(labels) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownCategory, index)
	}
	return labels[index], nil
}

// Key derives the machine key stored next to the label: the icon is
// stripped and the first word lowercased, e.g. "🪔 Temple & Altar" -> "temple".
func Key(label string) string {
	trimmed := strings.ToLower(leadingNonWord.ReplaceAllString(label, ""))
	key, _, _ := strings.Cut(trimmed, " ")
	return key
}

func CallbackData(index int) string {
	return callbackPrefix + strconv.Itoa(index)
}

// ParseCallback extracts the index from a "cat:<n>" button payload. It does
// not check the catalog bounds; Label does.
func ParseCallback(data string) (int, bool) {
	raw, ok := strings.CutPrefix(data, callbackPrefix)
	if !ok || raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return index, true
}
