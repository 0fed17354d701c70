package itinerary

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/mission77/core/internal/models"
)

type CreateItineraryDTO struct {
	District        string   `json:"district"    binding:"required"`
	Date            string   `json:"date"        binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Spots           []string `json:"spots"`
	Participants    int      `json:"participants"`
	MaxParticipants *int     `json:"maxParticipants"`
	ContactInfo     string   `json:"contactInfo"`
}

type UpdateItineraryDTO struct {
	District        *string   `json:"district"`
	Date            *string   `json:"date"`
	Description     *string   `json:"description"`
	Spots           *[]string `json:"spots"`
	MaxParticipants *int      `json:"maxParticipants"`
	ContactInfo     *string   `json:"contactInfo"`
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Create stores a new itinerary. The participants counter is forced to 0
// regardless of the caller-supplied value; no registration flow increments it.
func (s *Service) Create(ctx context.Context, dto *CreateItineraryDTO) (*models.Itinerary, error) {
	now := time.Now()
	it := models.Itinerary{
		ID:              NewID(),
		District:        dto.District,
		Date:            dto.Date,
		Description:     dto.Description,
		Spots:           dto.Spots,
		Participants:    0,
		MaxParticipants: dto.MaxParticipants,
		ContactInfo:     dto.ContactInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if it.Spots == nil {
		it.Spots = []string{}
	}

	if err := s.store.Insert(ctx, it); err != nil {
		s.log.Error("create itinerary failed", zap.Error(err))
		return nil, err
	}
	return &it, nil
}

// Update merges the supplied fields and restamps updatedAt. A missing id
// propagates the store's not-found error.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateItineraryDTO) error {
	fields := bson.M{"updatedAt": time.Now()}
	if dto.District != nil {
		fields["district"] = *dto.District
	}
	if dto.Date != nil {
		fields["date"] = *dto.Date
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Spots != nil {
		fields["spots"] = *dto.Spots
	}
	if dto.MaxParticipants != nil {
		fields["maxParticipants"] = *dto.MaxParticipants
	}
	if dto.ContactInfo != nil {
		fields["contactInfo"] = *dto.ContactInfo
	}

	if err := s.store.Update(ctx, id, fields); err != nil {
		s.log.Error("update itinerary failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes by id. Deleting a missing id is an error, propagated as-is.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Error("delete itinerary failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// List returns all itineraries ordered by date ascending (string comparison).
func (s *Service) List(ctx context.Context) ([]models.Itinerary, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("list itineraries failed", zap.Error(err))
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})
	return items, nil
}
