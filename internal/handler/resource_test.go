package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createWidget struct {
	Name string `json:"name" binding:"required"`
}

type updateWidget struct {
	Name *string `json:"name"`
}

type widgetService struct {
	items  map[int64]*widget
	nextID int64
}

func newWidgetService() *widgetService {
	return &widgetService{items: make(map[int64]*widget), nextID: 1}
}

func (s *widgetService) Get(ctx context.Context, id int64) (*widget, error) {
	if w, ok := s.items[id]; ok {
		return w, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "widget not found")
}

func (s *widgetService) Create(ctx context.Context, req createWidget) (*widget, error) {
	w := &widget{ID: s.nextID, Name: req.Name}
	s.nextID++
	s.items[w.ID] = w
	return w, nil
}

func (s *widgetService) Update(ctx context.Context, id int64, req updateWidget) (*widget, error) {
	w, ok := s.items[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "widget not found")
	}
	if req.Name != nil {
		w.Name = *req.Name
	}
	return w, nil
}

func (s *widgetService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "widget not found")
	}
	delete(s.items, id)
	return nil
}

func newWidgetRouter(svc *widgetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewResource[widget, createWidget, updateWidget](svc, func(c *gin.Context) ([]widget, error) {
		return nil, nil
	})
	r := gin.New()
	r.GET("/widgets", h.List)
	r.GET("/widgets/:id", h.Get)
	r.POST("/widgets", h.Create)
	r.PUT("/widgets/:id", h.Update)
	r.DELETE("/widgets/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestResourceListEmptyIsArray(t *testing.T) {
	r := newWidgetRouter(newWidgetService())

	rec := doJSON(r, http.MethodGet, "/widgets", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestResourceCreateReturns201(t *testing.T) {
	r := newWidgetRouter(newWidgetService())

	rec := doJSON(r, http.MethodPost, "/widgets", `{"name":"amphi A"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Data)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "amphi A", data["name"])
	assert.Equal(t, float64(1), data["id"])
}

func TestResourceCreateBadPayload(t *testing.T) {
	r := newWidgetRouter(newWidgetService())

	rec := doJSON(r, http.MethodPost, "/widgets", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}

func TestResourceNonNumericIDIs404(t *testing.T) {
	r := newWidgetRouter(newWidgetService())

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := doJSON(r, method, "/widgets/abc", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrNotFound.Code, env.Error.Code)
	}
}

func TestResourceDeleteReturns204(t *testing.T) {
	svc := newWidgetService()
	r := newWidgetRouter(svc)

	doJSON(r, http.MethodPost, "/widgets", `{"name":"amphi A"}`)
	rec := doJSON(r, http.MethodDelete, "/widgets/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(r, http.MethodGet, "/widgets/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResourceUpdateMergesPartial(t *testing.T) {
	svc := newWidgetService()
	r := newWidgetRouter(svc)

	doJSON(r, http.MethodPost, "/widgets", `{"name":"amphi A"}`)
	rec := doJSON(r, http.MethodPut, "/widgets/1", `{"name":"amphi B"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "amphi B", data["name"])
}
