package swagger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/coffee-store/api-contract"
	"github.com/tuanvumaihuynh/coffee-store/internal/http/swagger"
)

func TestSwaggerDocsRoute(t *testing.T) {
	r := chi.NewRouter()
	require.NoError(t, swagger.Register(r))

	t.Run("Should get docs successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, resp.Body.String(), "<!DOCTYPE html>")
	})

	t.Run("Should get openapi.yml successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/openapi.yml", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/yaml")
	})
}

func TestLoadSpec(t *testing.T) {
	t.Run("Should load the embedded contract", func(t *testing.T) {
		doc, err := swagger.LoadSpec(apicontract.GetSpecBytes())
		require.NoError(t, err)

		paths := doc.Paths.Map()
		require.Contains(t, paths, "/api/coffees")
		require.Contains(t, paths, "/api/coffees/{id}")
		assert.NotNil(t, paths["/api/coffees/{id}"].Delete)
	})

	t.Run("Should reject an invalid document", func(t *testing.T) {
		_, err := swagger.LoadSpec([]byte("openapi: 3.0.3\ninfo: {}\n"))
		assert.Error(t, err)
	})
}
