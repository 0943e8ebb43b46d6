// Package domain models Seattle illegal-dumping service-request data.
//
// # Data Source
//
// Records come from the City of Seattle Customer Service Requests open
// dataset, filtered to illegal-dumping reports and exported as a flat CSV.
// Columns are referenced by header name; extracts from different years carry
// slightly different column sets, so a missing column simply means the field
// is absent on every record.
//
// # Field Conventions
//
// Free-text fields may hold placeholder tokens for "no value" ("None", "nan",
// "null", empty string). Cleaning maps all of these to absent; it never
// fabricates a concrete value. A fixed set of categorical fields is then
// coalesced to the literal "Unknown" so downstream join keys stay total.
//
// Coordinates:
//
//	WGS-84 latitude/longitude as decimal strings. The pair (0, 0) is a common
//	"no GPS fix" placeholder and is treated as absent. Valid coordinates are
//	rounded to 4 decimal places (~10 m) before keying so that repeated reports
//	at one site collapse onto a single location.
//
// Timestamps:
//
//	The extract has shipped both US-style ("03/25/2021 02:30:00 PM") and
//	ISO-style ("2021-03-25 14:30:00") datetime strings over the years.
//	Parsing tries each known layout in order; no match means absent.
//
// # Join Keys
//
// LocationKey prefers rounded coordinates ("{lat},{lon}") and falls back to
// the normalized address text (uppercase, [A-Z0-9 ] only, collapsed
// whitespace). See [ResolveLocationKey].
//
// CategoryKey is the composite "VIOLATION|DESCRIPTION" built from the two
// free-text category fields. Fact and dimension rows must build this key with
// identical logic or joins silently break; both call [CategoryKey].
package domain
