package mart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/dumping-star-etl/internal/domain"
)

func validSchema() *StarSchema {
	return Build([]domain.Record{
		record(withSRN("21-000001")),
		record(withSRN("21-000002")),
	})
}

func TestValidate_Passes(t *testing.T) {
	require.NoError(t, Validate(validSchema()))
}

func TestValidate_FactGrain(t *testing.T) {
	t.Run("duplicate request numbers", func(t *testing.T) {
		s := Build([]domain.Record{
			record(withSRN("21-000001")),
			record(withSRN("21-000001")),
			record(withSRN("21-000001")),
			record(withSRN("21-000002")),
		})

		err := Validate(s)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFactGrain)
		assert.Contains(t, err.Error(), "2 duplicate ServiceRequestNumber")
	})

	t.Run("two absent request numbers violate grain", func(t *testing.T) {
		s := Build([]domain.Record{
			record(func(r *domain.Record) { r.ServiceRequestNumber = nil }),
			record(func(r *domain.Record) { r.ServiceRequestNumber = nil }),
		})

		assert.ErrorIs(t, Validate(s), ErrFactGrain)
	})
}

func TestValidate_JoinKeys(t *testing.T) {
	s := Build([]domain.Record{
		record(withSRN("21-000001")),
		record(func(r *domain.Record) {
			r.ServiceRequestNumber = strPtr("21-000002")
			r.Address = "---" // nothing usable, no coordinates
		}),
	})

	err := Validate(s)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingJoinKey)
	assert.Contains(t, err.Error(), "LocationKey absent on 1 fact rows")
}

func TestValidate_DimensionKeyUniqueness(t *testing.T) {
	t.Run("duplicate location key", func(t *testing.T) {
		s := validSchema()
		s.Locations = append(s.Locations, s.Locations[0])

		err := Validate(s)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDimKeyDup)
		assert.Contains(t, err.Error(), "dim_location")
	})

	t.Run("duplicate category key", func(t *testing.T) {
		s := validSchema()
		s.Categories = append(s.Categories, s.Categories[0])

		err := Validate(s)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDimKeyDup)
		assert.Contains(t, err.Error(), "dim_category")
	})
}

func TestValidate_GateOrder(t *testing.T) {
	// A schema broken in several ways reports the grain violation first.
	s := Build([]domain.Record{
		record(func(r *domain.Record) {
			r.ServiceRequestNumber = strPtr("21-000001")
			r.Address = "---"
		}),
		record(withSRN("21-000001")),
	})

	assert.ErrorIs(t, Validate(s), ErrFactGrain)
}

func strPtr(s string) *string { return &s }
