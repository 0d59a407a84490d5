package dto

// QueryRequestDTO is the body of POST /query.
type QueryRequestDTO struct {
	Question string `json:"question" binding:"required"`
}

// QueryResponseDTO carries the synthesized answer.
type QueryResponseDTO struct {
	Answer string `json:"answer"`
}

// SummaryRequestDTO is the body of POST /summary.
type SummaryRequestDTO struct {
	URL string `json:"url" binding:"required,url"`
}

// SummaryResponseDTO carries a stored document summary.
type SummaryResponseDTO struct {
	DocID   string `json:"doc_id"`
	Summary string `json:"summary"`
}

// TranscribeRequestDTO is the body of POST /video/transcribe.
type TranscribeRequestDTO struct {
	URL string `json:"url" binding:"required,url"`
}

// TranscribeResponseDTO reports an acquired and ingested transcript.
type TranscribeResponseDTO struct {
	DocID      string `json:"doc_id"`
	Source     string `json:"source"`
	Transcript string `json:"transcript"`
}
