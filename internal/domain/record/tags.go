package record

import "strconv"

// MaxVisibleTags is how many tag chips a card or timeline entry shows.
const MaxVisibleTags = 2

// VisibleTags splits tags into the chips to show and the number hidden.
func VisibleTags(tags []string) (shown []string, hidden int) {
	if len(tags) <= MaxVisibleTags {
		return tags, 0
	}
	return tags[:MaxVisibleTags:MaxVisibleTags], len(tags) - MaxVisibleTags
}

// OverflowLabel renders the "+N" badge text, or "" when nothing is hidden.
func OverflowLabel(hidden int) string {
	if hidden <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(hidden)
}
