package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are the datetime formats observed in the extract, tried in
// order. The US-style layout is what the open-data portal exports today.
var timestampLayouts = []string{
	"01/02/2006 03:04:05 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006-01-02",
}

// zipRe extracts the first 5-digit run from a ZIP value. Source values show up
// as "98118", "98118-2301", and occasionally "98118.0".
var zipRe = regexp.MustCompile(`(\d{5})`)

// ParseTimestamp parses a raw timestamp string. Unparsable input is absent.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if absentToken(s) {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ExtractZIP pulls a 5-digit ZIP code out of a raw value, kept as a string to
// preserve leading zeros. Non-matching input is absent.
func ExtractZIP(s string) *string {
	m := zipRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &m[1]
}

// ParseDistrict coerces a council district value to an integer. The extract
// sometimes renders districts as floats ("3.0"); those are accepted when the
// value is integral. Anything else is absent, never zero.
func ParseDistrict(s string) *int {
	s = strings.TrimSpace(s)
	if absentToken(s) {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return nil
	}
	n := int(f)
	return &n
}

// CleanRecord turns one RawRecord into a canonical Record. Cleaning is
// field-level: no input ever drops the whole record, and no conversion
// fabricates a value. The Community Reporting Area column is a fixed
// exclusion (over 75% missing in the source domain) and is not carried over.
func CleanRecord(raw RawRecord) Record {
	rec := Record{
		ServiceRequestNumber: NormalizeText(raw.ServiceRequestNumber),
		CreatedAt:            ParseTimestamp(raw.CreatedDate),
		MethodReceived:       textOrUnknown(raw.MethodReceived),
		Status:               textOrUnknown(raw.Status),
		PolicePrecinct:       textOrUnknown(raw.PolicePrecinct),
		CouncilDistrict:      ParseDistrict(raw.CouncilDistrict),
		ZIPCode:              ExtractZIP(raw.ZIPCode),
		ViolationLocatedAt:   textOrUnknown(raw.ViolationLocatedAt),
		DumpingDescription:   textOrUnknown(raw.DumpingDescription),
		Address:              textOrUnknown(raw.Location),
		Latitude:             ParseCoordinate(raw.Latitude),
		Longitude:            ParseCoordinate(raw.Longitude),
	}

	// (0,0) is a "no GPS fix" placeholder, not a position in the Gulf of
	// Guinea. Only the exact pair is dropped.
	if rec.Latitude != nil && rec.Longitude != nil && *rec.Latitude == 0 && *rec.Longitude == 0 {
		rec.Latitude = nil
		rec.Longitude = nil
	}

	if rec.CreatedAt != nil {
		t := *rec.CreatedAt
		year, month, day, hour := t.Year(), int(t.Month()), t.Day(), t.Hour()
		weekday := t.Weekday().String()
		rec.Year = &year
		rec.Month = &month
		rec.Day = &day
		rec.Weekday = &weekday
		rec.Hour = &hour
	}

	return rec
}
