package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// addressStripRe removes everything outside [A-Z0-9 ] from an uppercased
	// address so that punctuation variants of one address key identically.
	addressStripRe = regexp.MustCompile(`[^A-Z0-9 ]+`)

	// spaceRe collapses internal whitespace runs.
	spaceRe = regexp.MustCompile(`\s+`)
)

// ParseCoordinate parses a raw coordinate string. Malformed input is absent,
// never an error.
func ParseCoordinate(s string) *float64 {
	s = strings.TrimSpace(s)
	if absentToken(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// roundCoordinate rounds to 4 decimal places, roughly 10 meters at Seattle's
// latitude. GPS jitter across repeated reports at one site rounds to the same
// value, which is what makes coordinate-derived keys stable.
func roundCoordinate(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// formatCoordinate renders a rounded coordinate with the fewest digits that
// round-trip, so 47.6062 stays "47.6062" and 47.6 stays "47.6".
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NormalizeAddressKey reduces free-text address to a canonical key form:
// uppercase, [A-Z0-9 ] only, single spaces, trimmed. Returns "" when nothing
// usable remains.
func NormalizeAddressKey(address string) string {
	s := strings.ToUpper(strings.TrimSpace(address))
	if absentToken(s) {
		return ""
	}
	s = addressStripRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ResolveLocationKey derives the stable identifier for a physical place.
// Rounded coordinates win when both are present; (0,0) counts as absent.
// Otherwise the normalized address is used. Nil means neither source yielded
// a key, which validation later flags as a modeling defect.
func ResolveLocationKey(address string, lat, lon *float64) *string {
	if lat != nil && lon != nil && (*lat != 0 || *lon != 0) {
		key := formatCoordinate(roundCoordinate(*lat)) + "," + formatCoordinate(roundCoordinate(*lon))
		return &key
	}
	if s := NormalizeAddressKey(address); s != "" {
		return &s
	}
	return nil
}

// CategoryKey builds the composite category join key from the violation
// location text and the dumping description. Both sides go through
// NormalizeKeyText; the separator is "|". An absent side makes the whole key
// absent (""), which validation rejects — cleaning's Unknown fallback keeps
// that off the normal path. Fact and dim_category rows must both go through
// this function so the key is byte-identical on each side of the join.
func CategoryKey(violationLocatedAt, dumpingDescription string) string {
	v := NormalizeKeyText(violationLocatedAt)
	d := NormalizeKeyText(dumpingDescription)
	if v == nil || d == nil {
		return ""
	}
	return *v + "|" + *d
}
