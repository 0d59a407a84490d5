package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"second-brain/brain"
	"second-brain/cmd/api/dto"
	"second-brain/cmd/api/services"
)

// Knowledge is the slice of the query service the handlers use.
type Knowledge interface {
	Ask(ctx context.Context, question string) (string, error)
	GetSummary(ctx context.Context, docID string) (string, error)
}

// QueryHandler answers a question over the ingested corpus.
func QueryHandler(knowledge Knowledge) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.QueryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		answer, err := knowledge.Ask(c.Request.Context(), req.Question)
		if err != nil {
			if errors.Is(err, brain.ErrEmptyContent) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no_content_ingested"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "query_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.QueryResponseDTO{Answer: answer})
	}
}

// SummaryHandler returns the stored summary of a previously captured URL.
func SummaryHandler(knowledge Knowledge) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummaryRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		docID := services.DocIDFromURL(req.URL)
		summary, err := knowledge.GetSummary(c.Request.Context(), docID)
		if err != nil {
			if errors.Is(err, brain.ErrSummaryNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "summary_not_found"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "summary_lookup_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.SummaryResponseDTO{DocID: docID, Summary: summary})
	}
}
