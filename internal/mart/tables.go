// Package mart builds and validates the dimensional model: one fact table at
// service-request grain plus five dimension tables, all keyed by natural keys.
package mart

import "time"

// DateTime marshals as "2006-01-02 15:04:05" in CSV output, the format the
// downstream BI tooling expects for datetime columns.
type DateTime struct {
	time.Time
}

// MarshalCSV implements csvutil.Marshaler.
func (d DateTime) MarshalCSV() ([]byte, error) {
	return []byte(d.Format("2006-01-02 15:04:05")), nil
}

// Date marshals as "2006-01-02". Fact rows carry both the full timestamp and
// this date-truncated form; the latter is what joins to dim_date.
type Date struct {
	time.Time
}

// MarshalCSV implements csvutil.Marshaler.
func (d Date) MarshalCSV() ([]byte, error) {
	return []byte(d.Format("2006-01-02")), nil
}

// FactRow is one service request. Grain: exactly one row per
// ServiceRequestNumber, enforced by Validate. Rows are never mutated after
// Build returns.
type FactRow struct {
	ServiceRequestNumber *string   `csv:"ServiceRequestNumber"`
	CreatedDateTime      *DateTime `csv:"CreatedDateTime"`
	CreatedDate          *Date     `csv:"CreatedDate"`
	MethodReceived       string    `csv:"MethodReceived"`
	Status               string    `csv:"Status"`
	PolicePrecinct       string    `csv:"PolicePrecinct"`
	CouncilDistrict      *int      `csv:"CouncilDistrict"`
	ZIPCode              *string   `csv:"ZIPCode"`
	ViolationLocatedAt   string    `csv:"ViolationLocatedAt"`
	DumpingDescription   string    `csv:"DumpingDescription"`
	LocationKey          *string   `csv:"LocationKey"`
	CategoryKey          string    `csv:"CategoryKey"`
}

// DateRow is one distinct calendar date observed in the fact table.
type DateRow struct {
	Date            Date   `csv:"Date"`
	Year            int    `csv:"Year"`
	MonthNumber     int    `csv:"MonthNumber"`
	MonthName       string `csv:"MonthName"`
	DayOfWeekNumber int    `csv:"DayOfWeekNumber"`
	DayOfWeekName   string `csv:"DayOfWeekName"`
	WeekOfYear      int    `csv:"WeekOfYear"`
}

// LocationRow is one distinct physical place, keyed by LocationKey. The
// descriptive attributes come from the first fact row seen for the key.
type LocationRow struct {
	LocationKey     string   `csv:"LocationKey"`
	Location        string   `csv:"Location"`
	Latitude        *float64 `csv:"Latitude"`
	Longitude       *float64 `csv:"Longitude"`
	ZIPCode         *string  `csv:"ZIPCode"`
	PolicePrecinct  string   `csv:"PolicePrecinct"`
	CouncilDistrict *int     `csv:"CouncilDistrict"`
}

// CategoryRow is one distinct (violation location, dumping description) pair.
type CategoryRow struct {
	ViolationLocatedAt string `csv:"ViolationLocatedAt"`
	DumpingDescription string `csv:"DumpingDescription"`
	CategoryKey        string `csv:"CategoryKey"`
}

// IntakeRow is one distinct intake method (app, phone, web, ...).
type IntakeRow struct {
	MethodReceived string `csv:"MethodReceived"`
}

// StatusRow is one distinct request status.
type StatusRow struct {
	Status string `csv:"Status"`
}

// StarSchema holds the full dimensional model. Each table is exclusively
// owned: Build produces it, Validate reads it, the exporter reads it.
type StarSchema struct {
	Fact       []FactRow
	Dates      []DateRow
	Locations  []LocationRow
	Categories []CategoryRow
	Intakes    []IntakeRow
	Statuses   []StatusRow
}
