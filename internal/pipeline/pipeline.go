// Package pipeline orchestrates one batch run: read the raw extract, clean
// it, build the star schema, validate it, export it. Strictly forward; no
// stage re-reads downstream output.
package pipeline

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/dumping-star-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/dumping-star-etl/internal/config"
	"github.com/couchcryptid/dumping-star-etl/internal/domain"
	"github.com/couchcryptid/dumping-star-etl/internal/mart"
	"github.com/couchcryptid/dumping-star-etl/internal/observability"
)

// Pipeline runs the whole batch job. One logical actor owns every table for
// the duration of a run; there is no concurrency and no shared state.
type Pipeline struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// Summary reports what a successful run produced.
type Summary struct {
	FactRows     int
	DateRows     int
	LocationRows int
	CategoryRows int
	IntakeRows   int
	StatusRows   int
	ExportDir    string
	Duration     time.Duration
	Quality      QualityReport
}

// New creates a Pipeline. Pass a fake clock in tests for deterministic
// durations.
func New(logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// Run executes the batch job to completion. Any model-level defect aborts the
// run before a single file is written; the returned error names the failed
// invariant and the violation count.
func (p *Pipeline) Run(opts config.Options) (*Summary, error) {
	start := p.clock.Now()

	p.logger.Info("loading raw extract", "path", opts.InputPath)
	raws, err := csvfile.ReadRaw(opts.InputPath)
	if err != nil {
		return nil, err
	}
	p.metrics.RecordsRead.Add(float64(len(raws)))

	records := make([]domain.Record, 0, len(raws))
	for _, raw := range raws {
		rec := domain.CleanRecord(raw)
		p.countCleaning(raw, rec)
		records = append(records, rec)
	}
	p.metrics.RecordsCleaned.Add(float64(len(records)))

	quality := BuildQualityReport(records)
	p.logger.Info("cleaned records",
		"rows", quality.TotalRows,
		"columns", quality.TotalColumns,
		"rows_with_absent_pct", quality.RowsWithAbsentPct,
		"duplicate_rows", quality.DuplicateRows,
	)
	for _, cm := range quality.TopMissing {
		p.logger.Debug("missing values", "column", cm.Column, "pct", cm.Pct)
	}

	p.logger.Info("building star schema")
	schema := mart.Build(records)
	p.metrics.FactRows.Set(float64(len(schema.Fact)))
	p.metrics.DimRows.WithLabelValues("date").Set(float64(len(schema.Dates)))
	p.metrics.DimRows.WithLabelValues("location").Set(float64(len(schema.Locations)))
	p.metrics.DimRows.WithLabelValues("category").Set(float64(len(schema.Categories)))
	p.metrics.DimRows.WithLabelValues("intake").Set(float64(len(schema.Intakes)))
	p.metrics.DimRows.WithLabelValues("status").Set(float64(len(schema.Statuses)))

	p.logger.Info("validating model integrity")
	if err := mart.Validate(schema); err != nil {
		p.metrics.ValidationFailures.WithLabelValues(checkLabel(err)).Inc()
		return nil, err
	}

	p.logger.Info("exporting tables", "dir", opts.ExportDir)
	if err := csvfile.Export(opts.ExportDir, schema); err != nil {
		return nil, err
	}

	duration := p.clock.Since(start)
	p.metrics.RunDuration.Observe(duration.Seconds())

	return &Summary{
		FactRows:     len(schema.Fact),
		DateRows:     len(schema.Dates),
		LocationRows: len(schema.Locations),
		CategoryRows: len(schema.Categories),
		IntakeRows:   len(schema.Intakes),
		StatusRows:   len(schema.Statuses),
		ExportDir:    opts.ExportDir,
		Duration:     duration,
		Quality:      quality,
	}, nil
}

// countCleaning increments defect and fallback counters for one record.
// A defect is a raw value that was present but did not survive conversion.
func (p *Pipeline) countCleaning(raw domain.RawRecord, rec domain.Record) {
	present := func(s string) bool { return domain.NormalizeText(s) != nil }

	if present(raw.CreatedDate) && rec.CreatedAt == nil {
		p.metrics.FieldDefects.WithLabelValues("created_date").Inc()
	}
	if present(raw.ZIPCode) && rec.ZIPCode == nil {
		p.metrics.FieldDefects.WithLabelValues("zip_code").Inc()
	}
	if present(raw.CouncilDistrict) && rec.CouncilDistrict == nil {
		p.metrics.FieldDefects.WithLabelValues("council_district").Inc()
	}
	if present(raw.Latitude) && rec.Latitude == nil {
		p.metrics.FieldDefects.WithLabelValues("latitude").Inc()
	}
	if present(raw.Longitude) && rec.Longitude == nil {
		p.metrics.FieldDefects.WithLabelValues("longitude").Inc()
	}

	fallbacks := []struct {
		field   string
		raw     string
		cleaned string
	}{
		{"method_received", raw.MethodReceived, rec.MethodReceived},
		{"status", raw.Status, rec.Status},
		{"police_precinct", raw.PolicePrecinct, rec.PolicePrecinct},
		{"violation_located_at", raw.ViolationLocatedAt, rec.ViolationLocatedAt},
		{"dumping_description", raw.DumpingDescription, rec.DumpingDescription},
		{"location", raw.Location, rec.Address},
	}
	for _, f := range fallbacks {
		if f.cleaned == domain.Unknown && !present(f.raw) {
			p.metrics.UnknownFallbacks.WithLabelValues(f.field).Inc()
		}
	}
}

func checkLabel(err error) string {
	switch {
	case errors.Is(err, mart.ErrFactGrain):
		return "grain"
	case errors.Is(err, mart.ErrMissingJoinKey):
		return "join_key"
	case errors.Is(err, mart.ErrDimKeyDup):
		return "dim_key"
	}
	return "unknown"
}
