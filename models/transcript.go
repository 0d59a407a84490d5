package models

// TranscriptSource tells which acquisition path produced a transcript.
type TranscriptSource string

const (
	// TranscriptFromCaptions means an existing caption track was found.
	TranscriptFromCaptions TranscriptSource = "existing_caption"
	// TranscriptFromASR means the text was produced by speech recognition.
	TranscriptFromASR TranscriptSource = "asr"
)

// TranscriptResult is the transient output of the transcript acquirer,
// consumed immediately by the ingestion pipeline.
type TranscriptResult struct {
	Text   string           `json:"text"`
	Source TranscriptSource `json:"source"`
}
