package vcfstats

import "errors"

// Sentinel errors returned by parsing and merging. Callers match them with
// errors.Is.
var (
	// ErrNotStatsFile is returned when an input's first line does not carry
	// the bcftools stats / vcfcheck producer signature.
	ErrNotStatsFile = errors.New("not a bcftools stats file")

	// ErrUnknownSample is returned when a per-sample section names a sample
	// absent from the destination report. Merging reports from different
	// cohorts is a data error, so the merge aborts instead of inserting the
	// sample.
	ErrUnknownSample = errors.New("sample missing from destination report")

	// ErrSchemaMismatch is returned in strict mode when a section's
	// column-definition line differs between merged inputs.
	ErrSchemaMismatch = errors.New("section schema mismatch")

	// ErrEmptyInput is returned when an input has no content at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoInputs is returned when a merge is asked to combine zero files.
	ErrNoInputs = errors.New("no input files")
)
