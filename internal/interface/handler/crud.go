package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trading_backend/internal/domain/repository"
)

// crudService is the uniform usecase contract the handlers consume.
// Following Go convention, the interface is defined on the consumer side.
type crudService[E any, K any] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, k K) (*E, error)
	Create(ctx context.Context, e *E) (*E, error)
	Update(ctx context.Context, k K, e *E) (*E, error)
	Delete(ctx context.Context, k K) error
}

// registerCrud wires the five uniform routes for one entity under path.
// The transport never interprets payloads beyond JSON binding; scalar and
// referential checks belong to the usecases.
func registerCrud[E any, K any](rg *gin.RouterGroup, path string, svc crudService[E, K], parseKey func(string) (K, error)) {
	rg.GET(path, func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	})

	rg.GET(path+"/:id", func(c *gin.Context) {
		k, err := parseKey(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		row, err := svc.Get(c.Request.Context(), k)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	})

	rg.POST(path, func(c *gin.Context) {
		var e E
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		row, err := svc.Create(c.Request.Context(), &e)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, row)
	})

	rg.PUT(path+"/:id", func(c *gin.Context) {
		k, err := parseKey(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		var e E
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		row, err := svc.Update(c.Request.Context(), k, &e)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	})

	rg.DELETE(path+"/:id", func(c *gin.Context) {
		k, err := parseKey(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), k); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &repository.ValidationError{Field: "id", Reason: "not a valid UUID: " + s}
	}
	return id, nil
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &repository.ValidationError{Field: "id", Reason: "not a valid integer id: " + s}
	}
	return n, nil
}
