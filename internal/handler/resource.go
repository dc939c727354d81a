package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

// CrudService is the uniform contract every entity service exposes for
// the standard five routes. E is the entity, C the create payload, U the
// partial update payload.
type CrudService[E any, C any, U any] interface {
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, req C) (*E, error)
	Update(ctx context.Context, id int64, req U) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// Resource adapts one CrudService to gin. Listing goes through a
// mount-site closure so each entity keeps its own typed filter parsing.
type Resource[E any, C any, U any] struct {
	svc  CrudService[E, C, U]
	list func(c *gin.Context) ([]E, error)
}

// NewResource builds the handler set for one entity.
func NewResource[E any, C any, U any](svc CrudService[E, C, U], list func(c *gin.Context) ([]E, error)) *Resource[E, C, U] {
	return &Resource[E, C, U]{svc: svc, list: list}
}

// List responds with the full or filtered collection. An empty result is
// an empty JSON array, never null.
func (h *Resource[E, C, U]) List(c *gin.Context) {
	items, err := h.list(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []E{}
	}
	response.JSON(c, http.StatusOK, items)
}

// Get responds with one record by id.
func (h *Resource[E, C, U]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create decodes the payload and responds 201 with the stored record.
func (h *Resource[E, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update decodes a partial payload and responds with the merged record.
func (h *Resource[E, C, U]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete removes one record and responds 204.
func (h *Resource[E, C, U]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// parseID reads the :id path parameter. Non-numeric ids cannot match any
// record, so they answer 404 like any other miss.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "resource not found"))
		return 0, false
	}
	return id, true
}
