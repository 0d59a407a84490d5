package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"second-brain/feeder"
	"second-brain/internal/logger"
	"second-brain/models"
	"second-brain/parser"
	"second-brain/renderer"
	"second-brain/transcript"
)

// Ingester is the slice of the ingestion pipeline the capture service
// drives.
type Ingester interface {
	Ingest(ctx context.Context, doc models.Document) error
}

// TranscriptAcquirer obtains a transcript for a video URL.
type TranscriptAcquirer interface {
	Acquire(ctx context.Context, videoURL string) (models.TranscriptResult, error)
}

// CaptureResult reports one captured document.
type CaptureResult struct {
	DocID      string
	SourceKind models.SourceKind
}

// FeedItemResult reports the capture outcome of a single feed item.
type FeedItemResult struct {
	URL   string
	DocID string
	Err   error
}

// CaptureService turns URLs into ingested documents: web pages via the
// fetch/extract chain, videos via the transcript acquirer.
type CaptureService struct {
	pipeline Ingester
	acquirer TranscriptAcquirer
}

func NewCaptureService(pipeline Ingester, acquirer TranscriptAcquirer) *CaptureService {
	return &CaptureService{pipeline: pipeline, acquirer: acquirer}
}

// DocIDFromURL derives the stable document id for a source URL: the
// video id when the URL has one, otherwise a hash of the URL. Stable ids
// make re-capturing the same source an overwrite.
func DocIDFromURL(url string) string {
	if id, ok := transcript.VideoID(url); ok {
		return id
	}
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:8])
}

// CaptureURL fetches a web page, extracts its main text, and ingests it.
// rendered routes the fetch through a headless browser for script-heavy
// pages.
func (s *CaptureService) CaptureURL(ctx context.Context, url string, rendered bool) (CaptureResult, error) {
	var html string
	var err error
	if rendered {
		html, err = renderer.RenderHTML(url)
	} else {
		html, err = parser.FetchHTML(url)
	}
	if err != nil {
		return CaptureResult{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	text, err := parser.ExtractText(html)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("extract %s: %w", url, err)
	}

	docID := DocIDFromURL(url)
	err = s.pipeline.Ingest(ctx, models.Document{
		DocID:      docID,
		SourceKind: models.SourceWebPage,
		SourceURL:  url,
		RawText:    text,
	})
	if err != nil {
		return CaptureResult{}, err
	}
	return CaptureResult{DocID: docID, SourceKind: models.SourceWebPage}, nil
}

// CaptureFeed captures every item of an RSS/Atom feed, up to limit.
// Item failures do not abort the run; each item reports its own result.
func (s *CaptureService) CaptureFeed(ctx context.Context, feedURL string, limit int) ([]FeedItemResult, error) {
	items, err := feeder.FetchFeedItems(feedURL, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	results := make([]FeedItemResult, 0, len(items))
	for _, item := range items {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		res, err := s.CaptureURL(ctx, item.Link, false)
		if err != nil {
			logger.Log.Warnf("feed item %s capture failed: %v", item.Link, err)
			results = append(results, FeedItemResult{URL: item.Link, Err: err})
			continue
		}
		results = append(results, FeedItemResult{URL: item.Link, DocID: res.DocID})
	}
	return results, nil
}

// TranscribeResult reports an acquired and ingested video transcript.
type TranscribeResult struct {
	DocID      string
	Source     models.TranscriptSource
	Transcript string
}

// Transcribe acquires the transcript of a video and ingests it.
func (s *CaptureService) Transcribe(ctx context.Context, videoURL string) (TranscribeResult, error) {
	result, err := s.acquirer.Acquire(ctx, videoURL)
	if err != nil {
		return TranscribeResult{}, err
	}

	docID := DocIDFromURL(videoURL)
	err = s.pipeline.Ingest(ctx, models.Document{
		DocID:      docID,
		SourceKind: models.SourceVideo,
		SourceURL:  videoURL,
		RawText:    result.Text,
	})
	if err != nil {
		return TranscribeResult{}, err
	}

	return TranscribeResult{
		DocID:      docID,
		Source:     result.Source,
		Transcript: result.Text,
	}, nil
}
