package mart

import (
	"errors"
	"fmt"
)

// Model-level defects. Each aborts the pipeline before anything is exported;
// none are downgraded to warnings.
var (
	// ErrFactGrain means two fact rows share a ServiceRequestNumber, so the
	// one-row-per-request grain assumption no longer holds for the source.
	ErrFactGrain = errors.New("fact grain violation")

	// ErrMissingJoinKey means a fact row has no LocationKey or CategoryKey
	// and could never join to its dimension.
	ErrMissingJoinKey = errors.New("missing join key")

	// ErrDimKeyDup means a dimension table repeats its natural key.
	ErrDimKeyDup = errors.New("duplicate dimension key")
)

// Validate runs the integrity gates over a built schema, in order: fact
// grain, join-key completeness, dimension-key uniqueness. The first failing
// gate returns its error, parameterized with the violation count.
func Validate(s *StarSchema) error {
	if err := checkFactGrain(s.Fact); err != nil {
		return err
	}
	if err := checkJoinKeys(s.Fact); err != nil {
		return err
	}
	return checkDimensionKeys(s)
}

// checkFactGrain counts fact rows whose ServiceRequestNumber was already
// seen. Absent request numbers count as duplicates of each other: the grain
// is one row per identified request.
func checkFactGrain(fact []FactRow) error {
	seen := make(map[string]struct{}, len(fact))
	dups := 0
	for _, row := range fact {
		var id string
		if row.ServiceRequestNumber != nil {
			id = *row.ServiceRequestNumber
		}
		if _, ok := seen[id]; ok {
			dups++
			continue
		}
		seen[id] = struct{}{}
	}
	if dups > 0 {
		return fmt.Errorf("%w: %d duplicate ServiceRequestNumber values", ErrFactGrain, dups)
	}
	return nil
}

func checkJoinKeys(fact []FactRow) error {
	missingLocation := 0
	missingCategory := 0
	for _, row := range fact {
		if row.LocationKey == nil {
			missingLocation++
		}
		if row.CategoryKey == "" {
			missingCategory++
		}
	}
	if missingLocation > 0 {
		return fmt.Errorf("%w: LocationKey absent on %d fact rows", ErrMissingJoinKey, missingLocation)
	}
	if missingCategory > 0 {
		return fmt.Errorf("%w: CategoryKey absent on %d fact rows", ErrMissingJoinKey, missingCategory)
	}
	return nil
}

func checkDimensionKeys(s *StarSchema) error {
	locations := make(map[string]struct{}, len(s.Locations))
	dups := 0
	for _, row := range s.Locations {
		if _, ok := locations[row.LocationKey]; ok {
			dups++
			continue
		}
		locations[row.LocationKey] = struct{}{}
	}
	if dups > 0 {
		return fmt.Errorf("%w: dim_location repeats %d LocationKey values", ErrDimKeyDup, dups)
	}

	categories := make(map[string]struct{}, len(s.Categories))
	dups = 0
	for _, row := range s.Categories {
		if _, ok := categories[row.CategoryKey]; ok {
			dups++
			continue
		}
		categories[row.CategoryKey] = struct{}{}
	}
	if dups > 0 {
		return fmt.Errorf("%w: dim_category repeats %d CategoryKey values", ErrDimKeyDup, dups)
	}
	return nil
}
