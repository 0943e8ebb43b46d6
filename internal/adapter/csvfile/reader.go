// Package csvfile is the flat-file boundary: it reads the raw service-request
// extract and writes the six star-schema tables. No transformation logic
// lives here.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/dumping-star-etl/internal/domain"
)

// ReadRaw loads the entire source CSV into memory. Columns are matched to
// RawRecord fields by header name; columns the extract doesn't carry leave
// their fields empty, and extra columns are ignored. Structural problems
// (unreadable file, missing header, broken quoting) are errors.
func ReadRaw(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %s has no header row", path)
		}
		return nil, fmt.Errorf("read input header: %w", err)
	}

	var records []domain.RawRecord
	for {
		var rec domain.RawRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read input row: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
