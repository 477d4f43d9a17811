package domain

import "time"

// ReportRecord is one stored analysis run.
type ReportRecord struct {
	// ID is the run identifier, assigned at save time.
	ID string

	// CreatedAt is when the run completed.
	CreatedAt time.Time

	// Persona and Task repeat the report metadata for cheap listing.
	Persona string
	Task    string

	// DocumentCount is how many documents the task requested.
	DocumentCount int

	// Report is the full analysis output.
	Report Report
}
