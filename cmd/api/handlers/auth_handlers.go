package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"second-brain/cmd/api/dto"
	"second-brain/cmd/api/middleware"
	"second-brain/cmd/api/services"
)

// RegisterHandler creates a new account.
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		user, err := authSvc.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "email_already_registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_register"})
			return
		}

		c.JSON(http.StatusCreated, dto.UserProfileDTO{
			ID:        user.ID.Hex(),
			Email:     user.Email,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
	}
}

// TokenHandler exchanges credentials for an access token.
func TokenHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TokenRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		token, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "invalid_credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_issue_token"})
			return
		}

		c.JSON(http.StatusOK, dto.TokenResponseDTO{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// GetCurrentUserHandler returns the authenticated user's profile.
func GetCurrentUserHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authSvc.GetProfile(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_profile"})
			return
		}

		c.JSON(http.StatusOK, dto.UserProfileDTO{
			ID:        user.ID.Hex(),
			Email:     user.Email,
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
	}
}
