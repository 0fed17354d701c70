package coverage

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mission77/core/internal/middleware"
)

func newToggleRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(store, zap.NewNop())).
		RegisterRoutes(r.Group("/api/v1"), middleware.EditMode("patanahi"))
	return r
}

func TestToggleBlockedWithoutEditSwitch(t *testing.T) {
	store := &fakeStore{}
	r := newToggleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/districts/kaski/toggle", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
	if store.upsertCalls != 0 {
		t.Errorf("store called %d times without the edit switch, want 0", store.upsertCalls)
	}
}

func TestToggleAllowedWithEditSwitch(t *testing.T) {
	store := &fakeStore{}
	r := newToggleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/districts/kaski/toggle?patanahi", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if store.upsertCalls != 1 {
		t.Errorf("store called %d times, want 1", store.upsertCalls)
	}
}

func TestToggleUnknownDistrictReturns404(t *testing.T) {
	store := &fakeStore{}
	r := newToggleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/districts/atlantis/toggle?patanahi", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
