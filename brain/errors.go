package brain

import "errors"

var (
	// ErrEmptyContent is returned when a document's text is empty after
	// normalization. Nothing is summarized or indexed for such input.
	ErrEmptyContent = errors.New("document content is empty")

	// ErrSummaryNotFound means no summary has been stored for the doc id.
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrSummaryLookup means the store failed while looking a summary up.
	// Kept distinct from ErrSummaryNotFound so callers can tell "never
	// ingested" from "store is down".
	ErrSummaryLookup = errors.New("summary lookup failed")
)
