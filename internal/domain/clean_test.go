package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *time.Time
	}{
		{"US style with meridiem", "03/25/2021 02:30:00 PM", timePtr(time.Date(2021, 3, 25, 14, 30, 0, 0, time.UTC))},
		{"ISO datetime", "2021-03-25 14:30:00", timePtr(time.Date(2021, 3, 25, 14, 30, 0, 0, time.UTC))},
		{"ISO T datetime", "2021-03-25T14:30:00", timePtr(time.Date(2021, 3, 25, 14, 30, 0, 0, time.UTC))},
		{"date only", "2021-03-25", timePtr(time.Date(2021, 3, 25, 0, 0, 0, 0, time.UTC))},
		{"US date only", "03/25/2021", timePtr(time.Date(2021, 3, 25, 0, 0, 0, 0, time.UTC))},
		{"empty", "", nil},
		{"nan token", "nan", nil},
		{"garbage", "yesterday-ish", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTimestamp(tt.in))
		})
	}
}

func TestExtractZIP(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *string
	}{
		{"plain", "98118", strPtr("98118")},
		{"zip plus four", "98118-2301", strPtr("98118")},
		{"float rendered", "98118.0", strPtr("98118")},
		{"embedded", "Seattle WA 98104", strPtr("98104")},
		{"too short", "9811", nil},
		{"empty", "", nil},
		{"text", "unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractZIP(tt.in))
		})
	}
}

func TestParseDistrict(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *int
	}{
		{"integer", "3", intPtr(3)},
		{"float rendered", "3.0", intPtr(3)},
		{"padded", " 7 ", intPtr(7)},
		{"fractional", "3.5", nil},
		{"empty", "", nil},
		{"nan token", "nan", nil},
		{"text", "three", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDistrict(tt.in))
		})
	}
}

func TestCleanRecord(t *testing.T) {
	t.Run("well-formed row", func(t *testing.T) {
		raw := RawRecord{
			ServiceRequestNumber:   "21-000123",
			CreatedDate:            "03/25/2021 02:30:00 PM",
			MethodReceived:         " Phone ",
			Status:                 "Open",
			PolicePrecinct:         "SOUTH",
			CouncilDistrict:        "2",
			ZIPCode:                "98118-2301",
			ViolationLocatedAt:     "On public property",
			DumpingDescription:     "Household trash",
			Location:               "5000 RAINIER AVE S",
			Latitude:               "47.556801",
			Longitude:              "-122.284554",
			CommunityReportingArea: "Rainier Valley",
		}

		rec := CleanRecord(raw)

		require.NotNil(t, rec.ServiceRequestNumber)
		assert.Equal(t, "21-000123", *rec.ServiceRequestNumber)
		require.NotNil(t, rec.CreatedAt)
		assert.Equal(t, time.Date(2021, 3, 25, 14, 30, 0, 0, time.UTC), *rec.CreatedAt)
		assert.Equal(t, "Phone", rec.MethodReceived)
		assert.Equal(t, "Open", rec.Status)
		assert.Equal(t, "SOUTH", rec.PolicePrecinct)
		require.NotNil(t, rec.CouncilDistrict)
		assert.Equal(t, 2, *rec.CouncilDistrict)
		require.NotNil(t, rec.ZIPCode)
		assert.Equal(t, "98118", *rec.ZIPCode)
		assert.Equal(t, "5000 RAINIER AVE S", rec.Address)
		require.NotNil(t, rec.Latitude)
		assert.Equal(t, 47.556801, *rec.Latitude)
		require.NotNil(t, rec.Longitude)
		assert.Equal(t, -122.284554, *rec.Longitude)
	})

	t.Run("derives temporal parts", func(t *testing.T) {
		rec := CleanRecord(RawRecord{CreatedDate: "03/25/2021 02:30:00 PM"})

		require.NotNil(t, rec.Year)
		assert.Equal(t, 2021, *rec.Year)
		assert.Equal(t, 3, *rec.Month)
		assert.Equal(t, 25, *rec.Day)
		assert.Equal(t, "Thursday", *rec.Weekday)
		assert.Equal(t, 14, *rec.Hour)
	})

	t.Run("absent timestamp leaves temporal parts absent", func(t *testing.T) {
		rec := CleanRecord(RawRecord{CreatedDate: "not a date"})

		assert.Nil(t, rec.CreatedAt)
		assert.Nil(t, rec.Year)
		assert.Nil(t, rec.Month)
		assert.Nil(t, rec.Day)
		assert.Nil(t, rec.Weekday)
		assert.Nil(t, rec.Hour)
	})

	t.Run("zero pair coordinates become absent", func(t *testing.T) {
		rec := CleanRecord(RawRecord{Latitude: "0", Longitude: "0"})

		assert.Nil(t, rec.Latitude)
		assert.Nil(t, rec.Longitude)
	})

	t.Run("single zero coordinate survives", func(t *testing.T) {
		rec := CleanRecord(RawRecord{Latitude: "0", Longitude: "-122.3321"})

		require.NotNil(t, rec.Latitude)
		assert.Equal(t, 0.0, *rec.Latitude)
		require.NotNil(t, rec.Longitude)
	})

	t.Run("categorical fields fall back to Unknown", func(t *testing.T) {
		rec := CleanRecord(RawRecord{})

		assert.Equal(t, Unknown, rec.MethodReceived)
		assert.Equal(t, Unknown, rec.Status)
		assert.Equal(t, Unknown, rec.PolicePrecinct)
		assert.Equal(t, Unknown, rec.ViolationLocatedAt)
		assert.Equal(t, Unknown, rec.DumpingDescription)
		assert.Equal(t, Unknown, rec.Address)
	})

	t.Run("never fabricates values", func(t *testing.T) {
		rec := CleanRecord(RawRecord{
			CouncilDistrict: "not numeric",
			ZIPCode:         "zip",
			Latitude:        "far north",
			Longitude:       "",
		})

		// Absent stays absent: no zero district, no default coordinates.
		assert.Nil(t, rec.ServiceRequestNumber)
		assert.Nil(t, rec.CouncilDistrict)
		assert.Nil(t, rec.ZIPCode)
		assert.Nil(t, rec.Latitude)
		assert.Nil(t, rec.Longitude)
	})
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }
