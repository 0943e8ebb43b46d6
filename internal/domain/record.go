package domain

import "time"

// RawRecord is one row of the source CSV, untouched. Fields map to columns by
// header name; a column missing from the extract leaves its field empty, which
// cleaning treats as absent.
type RawRecord struct {
	ServiceRequestNumber   string `csv:"Service Request Number"`
	CreatedDate            string `csv:"Created Date"`
	MethodReceived         string `csv:"Method Received"`
	Status                 string `csv:"Status"`
	PolicePrecinct         string `csv:"Police Precinct"`
	CouncilDistrict        string `csv:"Council District"`
	ZIPCode                string `csv:"ZIP Code"`
	ViolationLocatedAt     string `csv:"Where is the Illegal Dumping Violation located?"`
	DumpingDescription     string `csv:"Choose a description of the Illegal Dumping"`
	Location               string `csv:"Location"`
	Latitude               string `csv:"Latitude"`
	Longitude              string `csv:"Longitude"`
	CommunityReportingArea string `csv:"Community Reporting Area"`
}

// Record is a RawRecord after cleaning. Optional fields are pointers; nil
// means the source value was missing or unparsable. Categorical fields
// (precinct, status, intake method, the two category texts, address) are
// always set, falling back to Unknown.
type Record struct {
	ServiceRequestNumber *string
	CreatedAt            *time.Time
	MethodReceived       string
	Status               string
	PolicePrecinct       string
	CouncilDistrict      *int
	ZIPCode              *string
	ViolationLocatedAt   string
	DumpingDescription   string
	Address              string
	Latitude             *float64
	Longitude            *float64

	// Temporal parts derived from CreatedAt; nil when CreatedAt is nil.
	Year    *int
	Month   *int
	Day     *int
	Weekday *string
	Hour    *int
}
