package service

import (
	"context"
	"fmt"

	"geolocator/internal/models"
)

// HistoryRepository interface for dependency injection
type HistoryRepository interface {
	ListAll(ctx context.Context) ([]models.Location, error)
	ListRecent(ctx context.Context, limit int) ([]models.Location, error)
}

// HistoryService lists recorded lookups
type HistoryService struct {
	repo HistoryRepository
}

func NewHistoryService(repo HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// List returns the newest limit records, or every record oldest first when limit <= 0.
func (s *HistoryService) List(ctx context.Context, limit int) ([]models.Location, error) {
	var (
		locations []models.Location
		err       error
	)
	if limit <= 0 {
		locations, err = s.repo.ListAll(ctx)
	} else {
		locations, err = s.repo.ListRecent(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to list history: %w", err)
	}
	return locations, nil
}
