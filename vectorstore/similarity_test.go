package vectorstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"second-brain/vectorstore"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, vectorstore.CosineSimilarity([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, vectorstore.CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, vectorstore.CosineSimilarity([]float64{1, 0}, []float64{-3, 0}), 1e-9)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, vectorstore.CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, vectorstore.CosineSimilarity([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, vectorstore.CosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}

func TestTopKOrdersByScore(t *testing.T) {
	records := []vectorstore.Record{
		{ID: "far", Embedding: []float64{0, 1}},
		{ID: "near", Embedding: []float64{1, 0.1}},
		{ID: "exact", Embedding: []float64{1, 0}},
	}

	got := vectorstore.TopK(records, []float64{1, 0}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "exact", got[0].Record.ID)
	assert.Equal(t, "near", got[1].Record.ID)
}

func TestMemoryStoreUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	store := vectorstore.NewMemoryStore()

	require.NoError(t, store.Upsert(ctx, vectorstore.Record{
		ID:       "summary_doc1",
		Text:     "first",
		Metadata: map[string]any{"type": vectorstore.TypeSummary, "source": "doc1"},
	}))
	require.NoError(t, store.Upsert(ctx, vectorstore.Record{
		ID:       "summary_doc1",
		Text:     "second",
		Metadata: map[string]any{"type": vectorstore.TypeSummary, "source": "doc1"},
	}))

	got, err := store.Get(ctx, "summary_doc1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := vectorstore.NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, vectorstore.ErrNotFound)
}

func TestMemoryStoreDeleteBySource(t *testing.T) {
	ctx := context.Background()
	store := vectorstore.NewMemoryStore()

	require.NoError(t, store.Upsert(ctx,
		vectorstore.Record{ID: "doc1:chunk:0", Metadata: map[string]any{"type": vectorstore.TypeChunk, "source": "doc1"}},
		vectorstore.Record{ID: "doc1:chunk:1", Metadata: map[string]any{"type": vectorstore.TypeChunk, "source": "doc1"}},
		vectorstore.Record{ID: "summary_doc1", Metadata: map[string]any{"type": vectorstore.TypeSummary, "source": "doc1"}},
		vectorstore.Record{ID: "doc2:chunk:0", Metadata: map[string]any{"type": vectorstore.TypeChunk, "source": "doc2"}},
	))

	require.NoError(t, store.DeleteBySource(ctx, "doc1", vectorstore.TypeChunk))

	chunks, err := store.ListByType(ctx, vectorstore.TypeChunk)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "doc2:chunk:0", chunks[0].ID)

	// Summary for doc1 untouched
	_, err = store.Get(ctx, "summary_doc1")
	assert.NoError(t, err)
}
