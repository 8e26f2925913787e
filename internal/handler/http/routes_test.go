// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketdiary/diary-server/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decodeMessage(t, rec).Message)
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_WrongMethod(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTraceID_GeneratedWhenAbsent(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceID_EchoedWhenPresent(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}
