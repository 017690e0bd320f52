package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sitegen_server/internal/catalog"
	"sitegen_server/internal/generator"
	"sitegen_server/internal/metrics"
	"sitegen_server/internal/provider"
	"sitegen_server/internal/types"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	pipeline := generator.NewService(
		catalog.Default(),
		provider.NewTemplateProvider(),
		nil,
		metrics.New(reg),
		zap.NewNop(),
		generator.Options{ProviderTimeout: time.Second, Concurrency: 2},
	)
	h := NewAPIHandler(pipeline, nil, zap.NewNop())

	router := gin.New()
	RegisterRoutes(router, h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return router
}

func TestGenerateWebsite_Success(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"description": "Bella Vista is an Italian restaurant",
		"industry":    "restaurant",
		"style":       "classic",
		"provider":    "template",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/website/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateWebsiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status.Success)
	assert.False(t, resp.Status.Degraded)
	assert.NotEmpty(t, resp.GenerationID)
	require.NotNil(t, resp.Website)
	assert.NotEmpty(t, resp.Website.Components)
	assert.Equal(t, "Bella Vista", resp.Website.Metadata.Title)
}

func TestGenerateWebsite_MissingRequiredFields(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/website/generate",
		bytes.NewReader([]byte(`{"style": "modern"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp GenerateWebsiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Status.Success)
	assert.Nil(t, resp.Website)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

// stubRewriter records that the image collaborator was invoked.
type stubRewriter struct{ called bool }

func (s *stubRewriter) Rewrite(_ context.Context, _ []types.GeneratedSection) error {
	s.called = true
	return nil
}

func TestGenerateWebsite_IncludeImagesInvokesRewriter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	pipeline := generator.NewService(
		catalog.Default(),
		provider.NewTemplateProvider(),
		nil,
		metrics.New(reg),
		zap.NewNop(),
		generator.Options{ProviderTimeout: time.Second, Concurrency: 2},
	)
	rewriter := &stubRewriter{}
	h := NewAPIHandler(pipeline, rewriter, zap.NewNop())
	router := gin.New()
	RegisterRoutes(router, h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	body, _ := json.Marshal(map[string]any{
		"description":   "a cozy cafe",
		"industry":      "cafe",
		"includeImages": true,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/website/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, rewriter.called)
}
