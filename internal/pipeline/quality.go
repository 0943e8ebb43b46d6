package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/dumping-star-etl/internal/domain"
)

// canonicalColumnCount is the width of a cleaned record: twelve carried
// columns plus five derived temporal parts.
const canonicalColumnCount = 17

// ColumnMissing is one column's share of absent values, in percent.
type ColumnMissing struct {
	Column string
	Pct    float64
}

// QualityReport summarizes the cleaned record set before modeling. It is
// informational only; nothing here gates the run.
type QualityReport struct {
	TotalRows         int
	TotalColumns      int
	RowsWithAbsentPct float64
	DuplicateRows     int
	TopMissing        []ColumnMissing
}

// BuildQualityReport computes row counts, absent-value shares per nilable
// column, and full-row duplicate counts over the cleaned records.
func BuildQualityReport(records []domain.Record) QualityReport {
	report := QualityReport{
		TotalRows:    len(records),
		TotalColumns: canonicalColumnCount,
	}
	if len(records) == 0 {
		return report
	}

	missing := map[string]int{}
	rowsWithAbsent := 0
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		absent := map[string]bool{
			"service_request_number": rec.ServiceRequestNumber == nil,
			"created_date":           rec.CreatedAt == nil,
			"council_district":       rec.CouncilDistrict == nil,
			"zip_code":               rec.ZIPCode == nil,
			"latitude":               rec.Latitude == nil,
			"longitude":              rec.Longitude == nil,
			"year":                   rec.Year == nil,
			"month":                  rec.Month == nil,
			"day":                    rec.Day == nil,
			"weekday":                rec.Weekday == nil,
			"hour":                   rec.Hour == nil,
		}
		rowHasAbsent := false
		for col, isAbsent := range absent {
			if isAbsent {
				missing[col]++
				rowHasAbsent = true
			}
		}
		if rowHasAbsent {
			rowsWithAbsent++
		}

		sig := recordSignature(rec)
		if _, ok := seen[sig]; ok {
			report.DuplicateRows++
		} else {
			seen[sig] = struct{}{}
		}
	}

	report.RowsWithAbsentPct = pct(rowsWithAbsent, len(records))

	for col, n := range missing {
		report.TopMissing = append(report.TopMissing, ColumnMissing{Column: col, Pct: pct(n, len(records))})
	}
	sort.Slice(report.TopMissing, func(i, j int) bool {
		if report.TopMissing[i].Pct != report.TopMissing[j].Pct {
			return report.TopMissing[i].Pct > report.TopMissing[j].Pct
		}
		return report.TopMissing[i].Column < report.TopMissing[j].Column
	})
	if len(report.TopMissing) > 5 {
		report.TopMissing = report.TopMissing[:5]
	}

	return report
}

func pct(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*100*100) / 100
}

// recordSignature renders every canonical field into a separator-joined string
// so full-row duplicates can be counted with a set.
func recordSignature(rec domain.Record) string {
	fields := []string{
		strOrNA(rec.ServiceRequestNumber),
		timeOrNA(rec.CreatedAt),
		rec.MethodReceived,
		rec.Status,
		rec.PolicePrecinct,
		intOrNA(rec.CouncilDistrict),
		strOrNA(rec.ZIPCode),
		rec.ViolationLocatedAt,
		rec.DumpingDescription,
		rec.Address,
		floatOrNA(rec.Latitude),
		floatOrNA(rec.Longitude),
	}
	return strings.Join(fields, "\x1f")
}

func strOrNA(p *string) string {
	if p == nil {
		return "\x00"
	}
	return *p
}

func intOrNA(p *int) string {
	if p == nil {
		return "\x00"
	}
	return fmt.Sprintf("%d", *p)
}

func floatOrNA(p *float64) string {
	if p == nil {
		return "\x00"
	}
	return fmt.Sprintf("%g", *p)
}

func timeOrNA(p *time.Time) string {
	if p == nil {
		return "\x00"
	}
	return p.Format(time.RFC3339)
}
