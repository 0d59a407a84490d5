package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"second-brain/config"
)

const SUMMARY_INSTRUCTION = `
You are a content summarization assistant. Produce a concise prose summary
of the provided text in no more than 1000 characters. Respond with the
summary text only: no preamble, no markdown, no headings.
`

const ANSWER_INSTRUCTION = `
You are a question answering assistant. Answer the question using only the
provided context passages. If the context does not contain the answer, say
so plainly instead of guessing. Respond with the answer text only.
`

// Gemini produces summaries and synthesizes RAG answers via the Gemini API.
type Gemini struct {
	model  string
	apiKey string
}

func NewGemini() *Gemini {
	cfg := config.GetConfig()
	return &Gemini{
		model:  cfg.Gemini.Model,
		apiKey: cfg.GeminiApiKey,
	}
}

func (g *Gemini) generate(ctx context.Context, instruction, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("model %s returned empty completion", g.model)
	}
	return text, nil
}

// Summarize returns a concise summary of the given text.
func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Please provide a concise summary of the following text:\n\n%s", text)
	return g.generate(ctx, SUMMARY_INSTRUCTION, prompt)
}

// Answer synthesizes an answer to the question from the retrieved
// context passages.
func (g *Gemini) Answer(ctx context.Context, question string, passages []string) (string, error) {
	var b strings.Builder
	b.WriteString("Context passages:\n\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "[%d] %s\n\n", i+1, p)
	}
	fmt.Fprintf(&b, "Question: %s", question)
	return g.generate(ctx, ANSWER_INSTRUCTION, b.String())
}
