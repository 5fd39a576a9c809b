// Package handler exposes the CRUD orchestrator over HTTP. Handlers are
// thin plumbing: bind, delegate, map the error taxonomy to a status code.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading_backend/internal/domain/entity"
	"trading_backend/internal/domain/repository"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps the core error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a storage failure and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	var (
		notFound    *repository.NotFoundError
		referential *repository.ReferentialError
		validation  *repository.ValidationError
		conflict    *repository.ConflictError
		unknownEnum *entity.UnknownEnumError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &referential):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validation), errors.As(err, &unknownEnum):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
