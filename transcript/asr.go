package transcript

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"second-brain/config"
)

// YtDlpAudio extracts best-effort audio from a video URL into a local
// m4a file using the yt-dlp binary.
type YtDlpAudio struct {
	BinPath string
}

func NewYtDlpAudio() *YtDlpAudio {
	return &YtDlpAudio{BinPath: config.GetConfig().Transcript.YtDlpPath}
}

// Extract downloads/transcodes the audio track of videoURL to destPath.
func (y *YtDlpAudio) Extract(ctx context.Context, videoURL, destPath string) error {
	cmd := exec.CommandContext(ctx, y.BinPath,
		"-f", "m4a/bestaudio/best",
		"-x", "--audio-format", "m4a",
		"--quiet",
		"-o", destPath,
		videoURL,
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp audio extraction: %w: %s", err, strings.TrimSpace(string(out)))
	}
	if _, err := os.Stat(destPath); err != nil {
		return fmt.Errorf("yt-dlp produced no audio file at %s: %w", destPath, err)
	}
	return nil
}

// WhisperASR transcribes a local audio file through the OpenAI audio
// transcription API.
type WhisperASR struct {
	client *openai.Client
	model  string
}

func NewWhisperASR() (*WhisperASR, error) {
	cfg := config.GetConfig()
	if cfg.OpenAIApiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	model := cfg.OpenAI.WhisperModel
	if model == "" {
		model = openai.Whisper1
	}

	return &WhisperASR{
		client: openai.NewClient(cfg.OpenAIApiKey),
		model:  model,
	}, nil
}

// Transcribe returns the transcript text of the whole audio file.
func (w *WhisperASR) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("transcription of %s returned empty text", audioPath)
	}
	return resp.Text, nil
}
