package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"second-brain/brain"
	"second-brain/cmd/api/dto"
	"second-brain/cmd/api/services"
)

// CaptureHandler captures a single web page.
func CaptureHandler(captureSvc *services.CaptureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CaptureRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		result, err := captureSvc.CaptureURL(c.Request.Context(), req.URL, req.Rendered)
		if err != nil {
			if errors.Is(err, brain.ErrEmptyContent) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "empty_content"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "capture_failed"})
			return
		}

		c.JSON(http.StatusCreated, dto.CaptureResponseDTO{
			DocID:      result.DocID,
			SourceKind: string(result.SourceKind),
		})
	}
}

// CaptureFeedHandler captures every item of an RSS/Atom feed.
func CaptureFeedHandler(captureSvc *services.CaptureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FeedCaptureRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		results, err := captureSvc.CaptureFeed(c.Request.Context(), req.FeedURL, req.Limit)
		if err != nil {
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "feed_fetch_failed"})
			return
		}

		resp := dto.FeedCaptureResponseDTO{Items: make([]dto.FeedItemResultDTO, 0, len(results))}
		for _, r := range results {
			item := dto.FeedItemResultDTO{URL: r.URL, DocID: r.DocID}
			if r.Err != nil {
				item.Error = r.Err.Error()
				resp.Failed++
			} else {
				resp.Captured++
			}
			resp.Items = append(resp.Items, item)
		}

		c.JSON(http.StatusOK, resp)
	}
}

// TranscribeHandler acquires and ingests a video transcript.
func TranscribeHandler(captureSvc *services.CaptureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TranscribeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		result, err := captureSvc.Transcribe(c.Request.Context(), req.URL)
		if err != nil {
			if errors.Is(err, brain.ErrEmptyContent) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "empty_content"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "transcription_failed"})
			return
		}

		c.JSON(http.StatusCreated, dto.TranscribeResponseDTO{
			DocID:      result.DocID,
			Source:     string(result.Source),
			Transcript: result.Transcript,
		})
	}
}
