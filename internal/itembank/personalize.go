package itembank

import "strings"

// namePlaceholder is what generated item text uses where the participant's
// first name should appear.
const namePlaceholder = "{name}"

// Personalize renders an item's display text for a participant. Texts with
// the placeholder get the first name substituted; anything else is returned
// unchanged so catalog items read the same for everyone.
func Personalize(text, name string) string {
	if !strings.Contains(text, namePlaceholder) {
		return text
	}
	first := FirstName(name)
	if first == "" {
		return strings.ReplaceAll(text, namePlaceholder, "you")
	}
	return strings.ReplaceAll(text, namePlaceholder, first)
}

// FirstName returns the first whitespace-separated token of a full name.
func FirstName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
