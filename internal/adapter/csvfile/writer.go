package csvfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/dumping-star-etl/internal/mart"
)

// Output file names, one per table. Fixed so downstream BI imports can rely
// on them.
const (
	FactFile     = "fact_illegal_dumping.csv"
	DateFile     = "dim_date.csv"
	LocationFile = "dim_location.csv"
	CategoryFile = "dim_category.csv"
	IntakeFile   = "dim_intake.csv"
	StatusFile   = "dim_status.csv"
)

// Export writes all six tables into dir, creating it if absent. Each file
// gets a header row even when the table is empty. Callers validate the schema
// first; Export itself does no checking.
func Export(dir string, s *mart.StarSchema) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	if err := writeTable(dir, FactFile, s.Fact); err != nil {
		return err
	}
	if err := writeTable(dir, DateFile, s.Dates); err != nil {
		return err
	}
	if err := writeTable(dir, LocationFile, s.Locations); err != nil {
		return err
	}
	if err := writeTable(dir, CategoryFile, s.Categories); err != nil {
		return err
	}
	if err := writeTable(dir, IntakeFile, s.Intakes); err != nil {
		return err
	}
	return writeTable(dir, StatusFile, s.Statuses)
}

func writeTable[T any](dir, name string, rows []T) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
