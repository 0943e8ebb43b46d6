package domain

import "strings"

// Unknown is the fallback value for categorical fields with no usable input.
const Unknown = "Unknown"

// absentToken reports whether a trimmed value is one of the placeholder
// tokens the source system emits for "no value".
func absentToken(s string) bool {
	switch {
	case s == "":
		return true
	case strings.EqualFold(s, "none"):
		return true
	case strings.EqualFold(s, "nan"):
		return true
	case strings.EqualFold(s, "null"):
		return true
	}
	return false
}

// NormalizeText trims a raw text value and maps placeholder tokens to absent
// (nil). It never fails: malformed input is absent, not an error.
func NormalizeText(v string) *string {
	s := strings.TrimSpace(v)
	if absentToken(s) {
		return nil
	}
	return &s
}

// NormalizeKeyText normalizes like NormalizeText and then uppercases.
// Used for fields that serve as join-key components, where matching must be
// case-insensitive.
func NormalizeKeyText(v string) *string {
	s := NormalizeText(v)
	if s == nil {
		return nil
	}
	up := strings.ToUpper(*s)
	return &up
}

// textOrUnknown collapses an absent value to the Unknown fallback.
func textOrUnknown(v string) string {
	if s := NormalizeText(v); s != nil {
		return *s
	}
	return Unknown
}
