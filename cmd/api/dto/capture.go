package dto

// CaptureRequestDTO is the body of POST /capture.
type CaptureRequestDTO struct {
	URL string `json:"url" binding:"required,url"`

	// Rendered fetches the page through a headless browser before
	// extraction, for script-heavy pages.
	Rendered bool `json:"rendered"`
}

// CaptureResponseDTO reports one captured document.
type CaptureResponseDTO struct {
	DocID      string `json:"doc_id"`
	SourceKind string `json:"source_kind"`
}

// FeedCaptureRequestDTO is the body of POST /capture/feed.
type FeedCaptureRequestDTO struct {
	FeedURL string `json:"feed_url" binding:"required,url"`
	Limit   int    `json:"limit"`
}

// FeedItemResultDTO reports the capture outcome of a single feed item.
type FeedItemResultDTO struct {
	URL   string `json:"url"`
	DocID string `json:"doc_id,omitempty"`
	Error string `json:"error,omitempty"`
}

// FeedCaptureResponseDTO is the response of POST /capture/feed.
type FeedCaptureResponseDTO struct {
	Captured int                 `json:"captured"`
	Failed   int                 `json:"failed"`
	Items    []FeedItemResultDTO `json:"items"`
}

// DocumentDTO is one captured document in listings.
type DocumentDTO struct {
	DocID      string `json:"doc_id"`
	SourceKind string `json:"source_kind"`
	SourceURL  string `json:"source_url"`
	Summary    string `json:"summary,omitempty"`
	UpdatedAt  string `json:"updated_at"`
}

// ListDocumentsResponseDTO is the response of GET /documents.
type ListDocumentsResponseDTO struct {
	Documents []DocumentDTO `json:"documents"`
}
