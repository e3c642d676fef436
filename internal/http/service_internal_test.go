package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
)

func newTestService(w io.Writer) *Service {
	return New(config.HTTP{}, slog.New(slog.NewTextHandler(w, nil)), nil, nil)
}

func TestService_Wrap(t *testing.T) {
	t.Run("Should render error when nothing was written", func(t *testing.T) {
		s := newTestService(io.Discard)
		h := s.wrap(func(http.ResponseWriter, *http.Request) error {
			return errors.New("connection refused")
		})

		resp := httptest.NewRecorder()
		h(resp, httptest.NewRequest(http.MethodGet, "/api/coffees", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.JSONEq(t, `{"code":"internalServerError","message":"an unknown error occurred"}`, resp.Body.String())
	})

	t.Run("Should only log error after response was written", func(t *testing.T) {
		var logs strings.Builder
		s := newTestService(&logs)
		h := s.wrap(func(w http.ResponseWriter, _ *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			return errors.New("json encode: broken pipe")
		})

		resp := httptest.NewRecorder()
		h(resp, httptest.NewRequest(http.MethodPost, "/api/coffees", nil))

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Empty(t, resp.Body.String())
		assert.Contains(t, logs.String(), "error after response was written")
		assert.Contains(t, logs.String(), "broken pipe")
	})
}
