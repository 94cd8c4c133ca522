package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities. Success responses are bare
// resource bodies; errors always use the {error: {code, message}} envelope.
type BaseHandler struct{}

// Success sends a 200 response with the given body
func (h *BaseHandler) Success(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with the given body
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain errors to HTTP responses, deriving the status
// from the error code. Unknown error types collapse to a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
