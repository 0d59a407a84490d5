package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"second-brain/cmd/api/dto"
	"second-brain/models"
)

// DocumentLister lists captured documents, newest first.
type DocumentLister interface {
	List(ctx context.Context, limit int64) ([]models.Document, error)
}

// ListDocumentsHandler returns recently captured documents.
func ListDocumentsHandler(docs DocumentLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_limit"})
			return
		}

		documents, err := docs.List(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_list_documents"})
			return
		}

		items := make([]dto.DocumentDTO, 0, len(documents))
		for _, d := range documents {
			items = append(items, dto.DocumentDTO{
				DocID:      d.DocID,
				SourceKind: string(d.SourceKind),
				SourceURL:  d.SourceURL,
				Summary:    d.SummaryText,
				UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, dto.ListDocumentsResponseDTO{Documents: items})
	}
}
