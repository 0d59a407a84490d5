package embedder

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"second-brain/config"
)

// OpenAI generates fixed-dimension embedding vectors via the OpenAI
// embeddings API.
type OpenAI struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAI() (*OpenAI, error) {
	cfg := config.GetConfig()
	if cfg.OpenAIApiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	model := openai.EmbeddingModel(cfg.OpenAI.EmbeddingModel)
	if model == "" {
		model = openai.SmallEmbedding3
	}

	return &OpenAI{
		client: openai.NewClient(cfg.OpenAIApiKey),
		model:  model,
	}, nil
}

// Embed returns the embedding vector for the given text.
func (e *OpenAI) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	vec32 := resp.Data[0].Embedding
	vec := make([]float64, len(vec32))
	for i, v := range vec32 {
		vec[i] = float64(v)
	}
	return vec, nil
}
