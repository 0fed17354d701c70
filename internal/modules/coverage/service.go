package coverage

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mission77/core/internal/catalog"
	"github.com/mission77/core/internal/models"
)

// ErrUnknownDistrict is returned when a toggle names an id outside the catalog.
var ErrUnknownDistrict = errors.New("unknown district id")

// visitedHighlight is written on every mark; first highlight entry.
const visitedHighlight = "Visited"

// Service reconciles the compiled-in catalog with the remote status
// collection into an in-memory working list, and pushes toggles back.
//
// The working list is sourced only from remote documents: a catalog district
// with no remote record does not appear in it. Districts() exposes that list;
// CatalogView() left-joins the full catalog for callers that need all 77.
type Service struct {
	store Store
	log   *zap.Logger

	mu        sync.Mutex
	districts []models.District
	covered   map[string]bool
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		log:     log,
		covered: make(map[string]bool),
	}
}

// Load fetches all status documents and rebuilds the working list. Store
// errors are logged and surface as an empty list, never as an error.
func (s *Service) Load(ctx context.Context) {
	docs, err := s.store.LoadAll(ctx)
	if err != nil {
		s.log.Error("load district status failed", zap.Error(err))
		docs = nil
	}

	covered := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.Covered {
			covered[d.ID] = true
		}
	}

	s.mu.Lock()
	s.districts = docs
	s.covered = covered
	s.mu.Unlock()
}

// Districts returns a snapshot of the working list.
func (s *Service) Districts() []models.District {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.District, len(s.districts))
	copy(out, s.districts)
	return out
}

// CoveredIDs returns the ids currently marked covered.
func (s *Service) CoveredIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.covered))
	for id, ok := range s.covered {
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// CoveredCount returns how many districts are currently marked covered.
func (s *Service) CoveredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, ok := range s.covered {
		if ok {
			n++
		}
	}
	return n
}

// CatalogView left-joins the full catalog with the coverage overlay, so all
// 77 districts appear even when no remote document exists yet.
func (s *Service) CatalogView() []models.District {
	s.mu.Lock()
	overlay := make(map[string]models.District, len(s.districts))
	for _, d := range s.districts {
		overlay[d.ID] = d
	}
	s.mu.Unlock()

	all := catalog.Districts()
	out := make([]models.District, 0, len(all))
	for _, c := range all {
		if d, ok := overlay[c.ID]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, models.District{
			ID:          c.ID,
			Name:        c.Name,
			Province:    c.Province,
			Coordinates: c.Coordinates,
		})
	}
	return out
}

// Toggle flips a district's covered state. The new value is the negation of
// the locally tracked state captured at call time; two rapid toggles on the
// same district can race, last writer wins. Local state updates only after
// the remote write confirms.
func (s *Service) Toggle(ctx context.Context, id string) (models.District, error) {
	entry, ok := catalog.ByID(id)
	if !ok {
		return models.District{}, ErrUnknownDistrict
	}

	s.mu.Lock()
	newCovered := !s.covered[id]
	s.mu.Unlock()

	upd := StatusUpdate{
		Name:        entry.Name,
		Province:    entry.Province,
		Coordinates: entry.Coordinates,
		Covered:     newCovered,
	}
	var dateVisited string
	if newCovered {
		dateVisited = time.Now().Format("2006-01-02")
		upd.DateVisited = Set(dateVisited)
		upd.Highlights = Set([]string{visitedHighlight})
	} else {
		upd.DateVisited = Clear[string]()
		upd.Highlights = Clear[[]string]()
	}

	if err := s.store.UpsertStatus(ctx, id, upd); err != nil {
		s.log.Error("toggle district failed", zap.String("district", id), zap.Error(err))
		return models.District{}, err
	}

	result := models.District{
		ID:          entry.ID,
		Name:        entry.Name,
		Province:    entry.Province,
		Coordinates: entry.Coordinates,
		Covered:     newCovered,
		UpdatedAt:   time.Now(),
	}
	if newCovered {
		result.DateVisited = dateVisited
		result.Highlights = []string{visitedHighlight}
	}

	s.applyLocal(result)
	return result, nil
}

// applyLocal mutates the working list after a confirmed remote write.
func (s *Service) applyLocal(d models.District) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.covered[d.ID] = d.Covered
	for i := range s.districts {
		if s.districts[i].ID == d.ID {
			s.districts[i] = d
			return
		}
	}
	s.districts = append(s.districts, d)
}
