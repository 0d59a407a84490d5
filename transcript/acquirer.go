package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"second-brain/internal/logger"
	"second-brain/models"
)

// Ports the acquirer drives. Real implementations live in this package
// (YouTubeCaptions, YtDlpAudio, WhisperASR); tests substitute fakes.

// CaptionFetcher retrieves an existing caption track as cleaned text.
// It returns an error wrapping ErrNoCaptions when no usable track
// exists.
type CaptionFetcher interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

// AudioExtractor downloads/transcodes the audio of a video URL to a
// local file.
type AudioExtractor interface {
	Extract(ctx context.Context, videoURL, destPath string) error
}

// Transcriber produces transcript text from a local audio file.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Acquirer obtains a transcript for a video: it first tries an existing
// caption track and falls back to speech recognition when no track is
// available or the caption path fails. The ASR path has no further
// fallback; its failures are surfaced to the caller.
type Acquirer struct {
	captions CaptionFetcher
	audio    AudioExtractor
	asr      Transcriber

	// audioDir is the scratch directory for extracted audio; empty
	// means os.TempDir(). archiveDir, when set, receives a persisted
	// copy of every acquired transcript for audit/debugging.
	audioDir   string
	archiveDir string
}

func NewAcquirer(captions CaptionFetcher, audio AudioExtractor, asr Transcriber, audioDir, archiveDir string) *Acquirer {
	return &Acquirer{
		captions:   captions,
		audio:      audio,
		asr:        asr,
		audioDir:   audioDir,
		archiveDir: archiveDir,
	}
}

// Acquire runs the two-path acquisition for the video URL.
func (a *Acquirer) Acquire(ctx context.Context, videoURL string) (models.TranscriptResult, error) {
	text, err := a.captions.Fetch(ctx, videoURL)
	if err == nil {
		result := models.TranscriptResult{Text: text, Source: models.TranscriptFromCaptions}
		a.archive(videoURL, result)
		return result, nil
	}

	if errors.Is(err, ErrNoCaptions) {
		logger.Log.Infof("no caption track for %s, falling back to speech recognition", videoURL)
	} else {
		logger.Log.Warnf("caption fetch for %s failed (%v), falling back to speech recognition", videoURL, err)
	}

	text, err = a.speechRecognize(ctx, videoURL)
	if err != nil {
		return models.TranscriptResult{}, fmt.Errorf("transcript acquisition for %s: %w", videoURL, err)
	}

	result := models.TranscriptResult{Text: text, Source: models.TranscriptFromASR}
	a.archive(videoURL, result)
	return result, nil
}

// speechRecognize extracts audio to a scratch file and transcribes it.
// The scratch file is removed on every exit path.
func (a *Acquirer) speechRecognize(ctx context.Context, videoURL string) (string, error) {
	dir := a.audioDir
	if dir == "" {
		dir = os.TempDir()
	}
	audioPath := filepath.Join(dir, "audio_"+SafeName(videoURL)+".m4a")

	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			logger.Log.Warnf("failed to clean up %s: %v", audioPath, err)
		}
	}()

	if err := a.audio.Extract(ctx, videoURL, audioPath); err != nil {
		return "", fmt.Errorf("audio extraction: %w", err)
	}

	text, err := a.asr.Transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("speech recognition: %w", err)
	}
	return text, nil
}

// archive persists an acquired transcript to the archive directory.
// Failures are logged, never surfaced: the archive is a debugging aid,
// not part of the acquisition contract.
func (a *Acquirer) archive(videoURL string, result models.TranscriptResult) {
	if a.archiveDir == "" {
		return
	}
	if err := os.MkdirAll(a.archiveDir, 0o755); err != nil {
		logger.Log.Warnf("transcript archive dir: %v", err)
		return
	}

	path := filepath.Join(a.archiveDir, SafeName(videoURL)+".txt")
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", result.Source)
	fmt.Fprintf(&b, "Original URL: %s\n", videoURL)
	b.WriteString(strings.Repeat("-", 30) + "\n\n")
	b.WriteString(result.Text)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		logger.Log.Warnf("transcript archive write %s: %v", path, err)
		return
	}
	logger.Log.Debugf("transcript archived to %s", path)
}
