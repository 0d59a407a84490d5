package brain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"second-brain/models"
	"second-brain/vectorstore"
)

type fakeAnswerer struct {
	answer   string
	err      error
	question string
	passages []string
}

func (f *fakeAnswerer) Answer(_ context.Context, question string, passages []string) (string, error) {
	f.question = question
	f.passages = passages
	return f.answer, f.err
}

// failingStore wraps a Store and fails Get, for telling lookup failures
// apart from misses.
type failingStore struct {
	vectorstore.Store
}

func (f *failingStore) Get(_ context.Context, _ string) (*vectorstore.Record, error) {
	return nil, errors.New("connection reset")
}

func newTestQuery(store vectorstore.Store, emb *fakeEmbedder, ans *fakeAnswerer) *Query {
	return &Query{embedder: emb, answerer: ans, store: store, topK: 2}
}

func seedChunks(t *testing.T, store vectorstore.Store, records ...vectorstore.Record) {
	t.Helper()
	require.NoError(t, store.Upsert(context.Background(), records...))
}

func chunkRecord(id, text string, vec []float64) vectorstore.Record {
	return vectorstore.Record{
		ID: id, Text: text, Embedding: vec,
		Metadata: map[string]any{"type": vectorstore.TypeChunk, "source": "doc"},
	}
}

func TestAskRetrievesMostSimilarChunks(t *testing.T) {
	store := vectorstore.NewMemoryStore()
	seedChunks(t, store,
		chunkRecord("doc:chunk:0", "about cats", []float64{1, 0, 0}),
		chunkRecord("doc:chunk:1", "about dogs", []float64{0, 1, 0}),
		chunkRecord("doc:chunk:2", "about fish", []float64{0, 0, 1}),
	)

	emb := &fakeEmbedder{vectors: map[string][]float64{
		"what about cats?": {0.9, 0.1, 0},
	}}
	ans := &fakeAnswerer{answer: "cats are great"}
	q := newTestQuery(store, emb, ans)

	answer, err := q.Ask(context.Background(), "what about cats?")
	require.NoError(t, err)
	assert.Equal(t, "cats are great", answer)
	assert.Equal(t, "what about cats?", ans.question)

	require.Len(t, ans.passages, 2)
	assert.Equal(t, "about cats", ans.passages[0], "best match comes first")
}

func TestAskEmptyQuestion(t *testing.T) {
	q := newTestQuery(vectorstore.NewMemoryStore(), &fakeEmbedder{}, &fakeAnswerer{})
	_, err := q.Ask(context.Background(), "   ")
	require.Error(t, err)
}

func TestAskNothingIngested(t *testing.T) {
	q := newTestQuery(vectorstore.NewMemoryStore(), &fakeEmbedder{}, &fakeAnswerer{})
	_, err := q.Ask(context.Background(), "anything?")
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestAskSeesChunksIngestedAfterHydration(t *testing.T) {
	store := vectorstore.NewMemoryStore()
	emb := &fakeEmbedder{}
	ans := &fakeAnswerer{answer: "ok"}
	q := newTestQuery(store, emb, ans)

	// First ask hydrates an empty index.
	_, err := q.Ask(context.Background(), "anything?")
	require.ErrorIs(t, err, ErrEmptyContent)

	p := newTestPipeline(store, &fakeSummarizer{summary: "s"}, nil)
	p.SetIndex(q)
	require.NoError(t, p.Ingest(context.Background(), models.Document{
		DocID: "d", SourceKind: models.SourceWebPage, RawText: "fresh content here",
	}))

	answer, err := q.Ask(context.Background(), "anything?")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, []string{"fresh content here"}, ans.passages)
}

func TestAskUsesCachedIndex(t *testing.T) {
	store := vectorstore.NewMemoryStore()
	seedChunks(t, store, chunkRecord("doc:chunk:0", "cached text", []float64{1, 0, 0}))

	ans := &fakeAnswerer{answer: "ok"}
	q := newTestQuery(store, &fakeEmbedder{}, ans)

	_, err := q.Ask(context.Background(), "q1")
	require.NoError(t, err)

	// A write that bypasses Invalidate is not visible: the cache answers.
	seedChunks(t, store, chunkRecord("doc:chunk:1", "sneaky write", []float64{1, 0, 0}))
	_, err = q.Ask(context.Background(), "q2")
	require.NoError(t, err)
	assert.Equal(t, []string{"cached text"}, ans.passages)

	// After an explicit invalidation the new chunk shows up.
	q.Invalidate()
	_, err = q.Ask(context.Background(), "q3")
	require.NoError(t, err)
	assert.Len(t, ans.passages, 2)
}

func TestGetSummary(t *testing.T) {
	store := vectorstore.NewMemoryStore()
	require.NoError(t, store.Upsert(context.Background(), vectorstore.Record{
		ID:   SummaryID("doc-1"),
		Text: "the summary",
		Metadata: map[string]any{
			"type": vectorstore.TypeSummary, "source": "doc-1",
		},
	}))

	q := newTestQuery(store, &fakeEmbedder{}, &fakeAnswerer{})

	summary, err := q.GetSummary(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "the summary", summary)
}

func TestGetSummaryMissVsFailure(t *testing.T) {
	mem := vectorstore.NewMemoryStore()
	q := newTestQuery(mem, &fakeEmbedder{}, &fakeAnswerer{})

	_, err := q.GetSummary(context.Background(), "never-ingested")
	assert.ErrorIs(t, err, ErrSummaryNotFound)
	assert.NotErrorIs(t, err, ErrSummaryLookup)

	broken := newTestQuery(&failingStore{Store: mem}, &fakeEmbedder{}, &fakeAnswerer{})
	_, err = broken.GetSummary(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrSummaryLookup)
	assert.NotErrorIs(t, err, ErrSummaryNotFound)
}
