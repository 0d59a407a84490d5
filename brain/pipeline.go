package brain

import (
	"context"
	"fmt"
	"strings"

	"second-brain/config"
	"second-brain/eventbus"
	"second-brain/internal/logger"
	"second-brain/models"
	"second-brain/normalizer"
	"second-brain/vectorstore"
)

// Model ports. Concrete implementations live in summarizer/ and
// embedder/; tests substitute fakes.

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// DocumentWriter persists the full document record for audit/debugging.
type DocumentWriter interface {
	Upsert(ctx context.Context, doc models.Document) error
}

// Refresher is notified after every successful ingestion so cached
// indexes can pick up the new chunks.
type Refresher interface {
	Invalidate()
}

// SummaryID returns the vector store id of a document's summary record.
func SummaryID(docID string) string {
	return "summary_" + docID
}

// Pipeline turns raw document text into indexed knowledge: normalize,
// summarize, embed, and upsert into the vector store.
type Pipeline struct {
	summarizer Summarizer
	embedder   Embedder
	store      vectorstore.Store
	docs       DocumentWriter
	bus        eventbus.EventBus
	index      Refresher

	// summaryRequired makes a summarization failure abort the whole
	// ingestion instead of logging and indexing without a summary.
	summaryRequired bool
	chunkWords      int
	chunkOverlap    int
}

func NewPipeline(summarizer Summarizer, embedder Embedder, store vectorstore.Store, docs DocumentWriter, bus eventbus.EventBus) *Pipeline {
	cfg := config.GetConfig()
	return &Pipeline{
		summarizer:      summarizer,
		embedder:        embedder,
		store:           store,
		docs:            docs,
		bus:             bus,
		summaryRequired: cfg.Ingest.SummaryRequired,
		chunkWords:      cfg.Ingest.ChunkWords,
		chunkOverlap:    cfg.Ingest.ChunkOverlap,
	}
}

// SetIndex registers the query index to refresh after ingestions.
func (p *Pipeline) SetIndex(index Refresher) {
	p.index = index
}

// ingestedEvent is the payload of lifecycle events.
type ingestedEvent struct {
	DocID      string            `json:"doc_id"`
	SourceKind models.SourceKind `json:"source_kind"`
	SourceURL  string            `json:"source_url"`
	Chunks     int               `json:"chunks"`
	HasSummary bool              `json:"has_summary"`
	Error      string            `json:"error,omitempty"`
}

// Ingest indexes one document. Re-ingesting the same doc id overwrites
// the prior summary and chunks.
func (p *Pipeline) Ingest(ctx context.Context, doc models.Document) error {
	clean := doc.RawText
	if doc.SourceKind == models.SourceVideo {
		clean = normalizer.Normalize(doc.RawText)
	} else {
		clean = strings.TrimSpace(clean)
	}
	if clean == "" {
		return fmt.Errorf("ingest %s: %w", doc.DocID, ErrEmptyContent)
	}
	doc.CleanText = clean

	summary, err := p.summarizer.Summarize(ctx, clean)
	if err != nil {
		if p.summaryRequired {
			p.publishFailure(ctx, doc, err)
			return fmt.Errorf("summarize %s: %w", doc.DocID, err)
		}
		logger.Log.Warnf("summarization of %s failed, indexing without summary: %v", doc.DocID, err)
		summary = ""
	}
	doc.SummaryText = summary

	if summary != "" {
		vec, err := p.embedder.Embed(ctx, summary)
		if err != nil {
			p.publishFailure(ctx, doc, err)
			return fmt.Errorf("embed summary of %s: %w", doc.DocID, err)
		}
		record := vectorstore.Record{
			ID:        SummaryID(doc.DocID),
			Text:      summary,
			Embedding: vec,
			Metadata: map[string]any{
				"type":   vectorstore.TypeSummary,
				"source": doc.DocID,
			},
		}
		if err := p.store.Upsert(ctx, record); err != nil {
			p.publishFailure(ctx, doc, err)
			return fmt.Errorf("store summary of %s: %w", doc.DocID, err)
		}
	}

	chunks, err := p.indexChunks(ctx, doc.DocID, clean)
	if err != nil {
		p.publishFailure(ctx, doc, err)
		return err
	}

	if p.docs != nil {
		if err := p.docs.Upsert(ctx, doc); err != nil {
			logger.Log.Warnf("document record upsert for %s failed: %v", doc.DocID, err)
		}
	}

	if p.index != nil {
		p.index.Invalidate()
	}

	p.publish(ctx, eventbus.TopicDocumentIngested, ingestedEvent{
		DocID:      doc.DocID,
		SourceKind: doc.SourceKind,
		SourceURL:  doc.SourceURL,
		Chunks:     chunks,
		HasSummary: summary != "",
	})

	logger.InfoWithFields("document ingested", logger.Fields{
		"doc_id":      doc.DocID,
		"source_kind": doc.SourceKind,
		"chunks":      chunks,
		"has_summary": summary != "",
	})
	return nil
}

// indexChunks replaces the document's chunk records with freshly
// embedded windows of the clean text. Delete-then-insert keeps re-ingest
// semantics an overwrite even when the new text yields fewer chunks.
func (p *Pipeline) indexChunks(ctx context.Context, docID, clean string) (int, error) {
	chunks := chunkWords(clean, p.chunkWords, p.chunkOverlap)

	records := make([]vectorstore.Record, 0, len(chunks))
	for i, chunk := range chunks {
		vec, err := p.embedder.Embed(ctx, chunk)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d of %s: %w", i, docID, err)
		}
		records = append(records, vectorstore.Record{
			ID:        fmt.Sprintf("%s:chunk:%d", docID, i),
			Text:      chunk,
			Embedding: vec,
			Metadata: map[string]any{
				"type":   vectorstore.TypeChunk,
				"source": docID,
				"seq":    i,
			},
		})
	}

	if err := p.store.DeleteBySource(ctx, docID, vectorstore.TypeChunk); err != nil {
		return 0, fmt.Errorf("clear chunks of %s: %w", docID, err)
	}
	if len(records) > 0 {
		if err := p.store.Upsert(ctx, records...); err != nil {
			return 0, fmt.Errorf("store chunks of %s: %w", docID, err)
		}
	}
	return len(records), nil
}

func (p *Pipeline) publishFailure(ctx context.Context, doc models.Document, cause error) {
	p.publish(ctx, eventbus.TopicDocumentFailed, ingestedEvent{
		DocID:      doc.DocID,
		SourceKind: doc.SourceKind,
		SourceURL:  doc.SourceURL,
		Error:      cause.Error(),
	})
}

func (p *Pipeline) publish(ctx context.Context, topic string, payload ingestedEvent) {
	if p.bus == nil {
		return
	}
	evt, err := eventbus.NewEvent(payload)
	if err != nil {
		logger.Log.Warnf("build %s event: %v", topic, err)
		return
	}
	if err := p.bus.Publish(ctx, topic, evt); err != nil {
		logger.Log.Warnf("publish %s event: %v", topic, err)
	}
}
