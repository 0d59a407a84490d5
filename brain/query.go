package brain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"second-brain/config"
	"second-brain/internal/logger"
	"second-brain/vectorstore"
)

// Answerer synthesizes an answer to a question from retrieved passages.
type Answerer interface {
	Answer(ctx context.Context, question string, passages []string) (string, error)
}

// Query answers questions over the ingested corpus and serves stored
// summaries. The chunk index is cached in memory and rehydrated lazily:
// each ingestion invalidates the cache, and the next question reloads it
// from the vector store. The lock is never held across store or model
// calls.
type Query struct {
	embedder Embedder
	answerer Answerer
	store    vectorstore.Store
	topK     int

	mu      sync.RWMutex
	chunks  []vectorstore.Record
	version uint64
	loaded  bool
}

func NewQuery(embedder Embedder, answerer Answerer, store vectorstore.Store) *Query {
	return &Query{
		embedder: embedder,
		answerer: answerer,
		store:    store,
		topK:     config.GetConfig().Ingest.TopK,
	}
}

// Invalidate marks the cached chunk index stale. The next Ask reloads it.
func (q *Query) Invalidate() {
	q.mu.Lock()
	q.loaded = false
	q.version++
	q.mu.Unlock()
}

// snapshot returns the cached chunk records, hydrating from the store
// when the cache is stale.
func (q *Query) snapshot(ctx context.Context) ([]vectorstore.Record, error) {
	q.mu.RLock()
	if q.loaded {
		chunks := q.chunks
		q.mu.RUnlock()
		return chunks, nil
	}
	version := q.version
	q.mu.RUnlock()

	records, err := q.store.ListByType(ctx, vectorstore.TypeChunk)
	if err != nil {
		return nil, fmt.Errorf("hydrate chunk index: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	// Another ingestion may have landed while we were loading; only
	// install the snapshot if nothing invalidated it in between.
	if q.version == version {
		q.chunks = records
		q.loaded = true
	}
	logger.Log.Debugf("chunk index hydrated with %d records", len(records))
	return records, nil
}

// Ask answers a question using the top-k most similar chunks as context.
func (q *Query) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	chunks, err := q.snapshot(ctx)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", fmt.Errorf("ask: %w", ErrEmptyContent)
	}

	queryVec, err := q.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}

	top := vectorstore.TopK(chunks, queryVec, q.topK)
	passages := make([]string, 0, len(top))
	for _, scored := range top {
		passages = append(passages, scored.Record.Text)
	}

	answer, err := q.answerer.Answer(ctx, question, passages)
	if err != nil {
		return "", fmt.Errorf("answer synthesis: %w", err)
	}
	return answer, nil
}

// GetSummary returns the stored summary for the doc id. A missing
// summary yields ErrSummaryNotFound; a store failure yields
// ErrSummaryLookup.
func (q *Query) GetSummary(ctx context.Context, docID string) (string, error) {
	record, err := q.store.Get(ctx, SummaryID(docID))
	if err != nil {
		if errors.Is(err, vectorstore.ErrNotFound) {
			return "", fmt.Errorf("summary of %s: %w", docID, ErrSummaryNotFound)
		}
		return "", fmt.Errorf("summary of %s: %v: %w", docID, err, ErrSummaryLookup)
	}
	return record.Text, nil
}
