package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceKind classifies where a document's text came from.
type SourceKind string

const (
	SourceWebPage SourceKind = "web_page"
	SourceVideo   SourceKind = "video"
)

// Document is one logical unit of ingested content. DocID is unique
// across the corpus; re-ingesting the same source overwrites the prior
// record (upsert, not append).
// Collection: documents
type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	DocID       string             `bson:"doc_id" json:"doc_id"`
	SourceKind  SourceKind         `bson:"source_kind" json:"source_kind"`
	SourceURL   string             `bson:"source_url" json:"source_url"`
	RawText     string             `bson:"raw_text" json:"raw_text"`
	CleanText   string             `bson:"clean_text" json:"clean_text"`
	SummaryText string             `bson:"summary_text" json:"summary_text"`
}
