package mart

import (
	"sort"
	"time"

	"github.com/couchcryptid/dumping-star-etl/internal/domain"
)

// Build partitions cleaned records into the star schema. The fact table is an
// order-preserving projection, one row per input record; dimensions are
// deduplicated on their natural keys. dim_date, dim_intake and dim_status are
// sorted ascending; dim_location and dim_category keep first-occurrence order,
// and when several address variants share one LocationKey the first record
// seen supplies the representative attributes.
func Build(records []domain.Record) *StarSchema {
	s := &StarSchema{
		Fact: make([]FactRow, 0, len(records)),
	}

	seenDates := make(map[time.Time]struct{})
	seenLocations := make(map[string]struct{})
	seenCategories := make(map[[2]string]struct{})
	seenIntakes := make(map[string]struct{})
	seenStatuses := make(map[string]struct{})

	for _, rec := range records {
		locationKey := domain.ResolveLocationKey(rec.Address, rec.Latitude, rec.Longitude)
		categoryKey := domain.CategoryKey(rec.ViolationLocatedAt, rec.DumpingDescription)

		fact := FactRow{
			ServiceRequestNumber: rec.ServiceRequestNumber,
			MethodReceived:       rec.MethodReceived,
			Status:               rec.Status,
			PolicePrecinct:       rec.PolicePrecinct,
			CouncilDistrict:      rec.CouncilDistrict,
			ZIPCode:              rec.ZIPCode,
			ViolationLocatedAt:   rec.ViolationLocatedAt,
			DumpingDescription:   rec.DumpingDescription,
			LocationKey:          locationKey,
			CategoryKey:          categoryKey,
		}
		if rec.CreatedAt != nil {
			fact.CreatedDateTime = &DateTime{*rec.CreatedAt}
			fact.CreatedDate = &Date{truncateToDate(*rec.CreatedAt)}
		}
		s.Fact = append(s.Fact, fact)

		if fact.CreatedDate != nil {
			date := fact.CreatedDate.Time
			if _, ok := seenDates[date]; !ok {
				seenDates[date] = struct{}{}
				s.Dates = append(s.Dates, buildDateRow(date))
			}
		}

		if locationKey != nil {
			if _, ok := seenLocations[*locationKey]; !ok {
				seenLocations[*locationKey] = struct{}{}
				s.Locations = append(s.Locations, LocationRow{
					LocationKey:     *locationKey,
					Location:        rec.Address,
					Latitude:        rec.Latitude,
					Longitude:       rec.Longitude,
					ZIPCode:         rec.ZIPCode,
					PolicePrecinct:  rec.PolicePrecinct,
					CouncilDistrict: rec.CouncilDistrict,
				})
			}
		}

		pair := [2]string{rec.ViolationLocatedAt, rec.DumpingDescription}
		if _, ok := seenCategories[pair]; !ok {
			seenCategories[pair] = struct{}{}
			s.Categories = append(s.Categories, CategoryRow{
				ViolationLocatedAt: rec.ViolationLocatedAt,
				DumpingDescription: rec.DumpingDescription,
				CategoryKey:        categoryKey,
			})
		}

		if _, ok := seenIntakes[rec.MethodReceived]; !ok {
			seenIntakes[rec.MethodReceived] = struct{}{}
			s.Intakes = append(s.Intakes, IntakeRow{MethodReceived: rec.MethodReceived})
		}
		if _, ok := seenStatuses[rec.Status]; !ok {
			seenStatuses[rec.Status] = struct{}{}
			s.Statuses = append(s.Statuses, StatusRow{Status: rec.Status})
		}
	}

	sort.Slice(s.Dates, func(i, j int) bool {
		return s.Dates[i].Date.Time.Before(s.Dates[j].Date.Time)
	})
	sort.Slice(s.Intakes, func(i, j int) bool {
		return s.Intakes[i].MethodReceived < s.Intakes[j].MethodReceived
	})
	sort.Slice(s.Statuses, func(i, j int) bool {
		return s.Statuses[i].Status < s.Statuses[j].Status
	})

	return s
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func buildDateRow(date time.Time) DateRow {
	_, week := date.ISOWeek()
	return DateRow{
		Date:        Date{date},
		Year:        date.Year(),
		MonthNumber: int(date.Month()),
		MonthName:   date.Month().String(),
		// Monday=0 ordering, matching the upstream BI model.
		DayOfWeekNumber: (int(date.Weekday()) + 6) % 7,
		DayOfWeekName:   date.Weekday().String(),
		WeekOfYear:      week,
	}
}
