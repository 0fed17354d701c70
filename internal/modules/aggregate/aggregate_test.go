package aggregate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/mission77/core/internal/config"
	"github.com/mission77/core/internal/models"
	"github.com/mission77/core/internal/modules/blog"
	"github.com/mission77/core/internal/modules/coverage"
	"github.com/mission77/core/internal/modules/itinerary"
)

type fakeCoverageStore struct {
	districts []models.District
}

func (f *fakeCoverageStore) LoadAll(ctx context.Context) ([]models.District, error) {
	return f.districts, nil
}

func (f *fakeCoverageStore) UpsertStatus(ctx context.Context, id string, upd coverage.StatusUpdate) error {
	return nil
}

type fakeItineraryStore struct {
	items []models.Itinerary
}

func (f *fakeItineraryStore) Insert(ctx context.Context, it models.Itinerary) error { return nil }
func (f *fakeItineraryStore) Update(ctx context.Context, id string, fields bson.M) error {
	return nil
}
func (f *fakeItineraryStore) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeItineraryStore) List(ctx context.Context) ([]models.Itinerary, error) {
	return f.items, nil
}

func newTestRouter(t *testing.T, covStore *fakeCoverageStore, itinStore *fakeItineraryStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(
		&config.AppConfig{Site: config.SiteConfig{Title: "Mission 77", BaseURL: "https://m77.example.com"}},
		coverage.NewService(covStore, zap.NewNop()),
		itinerary.NewService(itinStore, zap.NewNop()),
		blog.NewService(t.TempDir(), zap.NewNop()),
	)
	h.RegisterRoutes(r.Group(""))
	return r
}

func TestAggregateProvinceBreakdown(t *testing.T) {
	covStore := &fakeCoverageStore{districts: []models.District{
		{ID: "kaski", Name: "Kaski", Province: "Gandaki", Covered: true},
		{ID: "manang", Name: "Manang", Province: "Gandaki", Covered: true},
		{ID: "bhojpur", Name: "Bhojpur", Province: "Koshi", Covered: false},
	}}
	r := newTestRouter(t, covStore, &fakeItineraryStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aggregate", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body aggregateData
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Site.Title != "Mission 77" {
		t.Errorf("site title = %q", body.Site.Title)
	}
	if len(body.Provinces) != 7 {
		t.Fatalf("provinces = %d, want 7", len(body.Provinces))
	}
	if body.Coverage.Total != 77 {
		t.Errorf("total = %d, want 77", body.Coverage.Total)
	}
	if body.Coverage.Covered != 2 {
		t.Errorf("covered = %d, want 2", body.Coverage.Covered)
	}

	var gandaki *provinceSummary
	for i := range body.Provinces {
		if body.Provinces[i].Name == "Gandaki" {
			gandaki = &body.Provinces[i]
		}
	}
	if gandaki == nil {
		t.Fatal("Gandaki province missing from breakdown")
	}
	if gandaki.Covered != 2 {
		t.Errorf("Gandaki covered = %d, want 2", gandaki.Covered)
	}
	if gandaki.Districts != 11 {
		t.Errorf("Gandaki districts = %d, want 11", gandaki.Districts)
	}
	if gandaki.Color == "" {
		t.Error("Gandaki color missing")
	}
}

func TestAggregateStat(t *testing.T) {
	covStore := &fakeCoverageStore{districts: []models.District{
		{ID: "kaski", Name: "Kaski", Province: "Gandaki", Covered: true},
	}}
	itinStore := &fakeItineraryStore{items: []models.Itinerary{
		{ID: "a", District: "kaski", Date: "2025-04-01"},
		{ID: "b", District: "manang", Date: "2025-05-01"},
	}}
	r := newTestRouter(t, covStore, itinStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aggregate/stat", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body statResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Districts != 77 {
		t.Errorf("districts = %d, want 77", body.Districts)
	}
	if body.Covered != 1 {
		t.Errorf("covered = %d, want 1", body.Covered)
	}
	if body.Remaining != 76 {
		t.Errorf("remaining = %d, want 76", body.Remaining)
	}
	if body.Itineraries != 2 {
		t.Errorf("itineraries = %d, want 2", body.Itineraries)
	}
	if body.Posts != 0 {
		t.Errorf("posts = %d, want 0", body.Posts)
	}
}
