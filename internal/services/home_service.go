package services

import (
	"context"
	"sync"

	"worknestBack/internal/models"
	"worknestBack/internal/repositories"
)

type HomeStore interface {
	Subscribe(ctx context.Context, fn func([]models.Home)) *repositories.ListingSubscription
	CreateHome(ctx context.Context, home models.Home, identity models.Identity) (models.Home, error)
	DeleteHome(ctx context.Context, id string, identity models.Identity) error
}

// HomeService mirrors the homes collection the same way JobService mirrors
// jobs.
type HomeService struct {
	HomeRepo HomeStore
	OnChange func(total int)

	mu    sync.RWMutex
	homes []models.Home
	sub   *repositories.ListingSubscription
}

func (s *HomeService) Start(ctx context.Context) {
	s.sub = s.HomeRepo.Subscribe(ctx, s.replaceAll)
}

func (s *HomeService) Stop() {
	if s.sub != nil {
		s.sub.Stop()
	}
}

func (s *HomeService) replaceAll(homes []models.Home) {
	s.mu.Lock()
	s.homes = homes
	total := len(homes)
	s.mu.Unlock()

	if s.OnChange != nil {
		s.OnChange(total)
	}
}

func (s *HomeService) GetFilteredHomes(filter models.HomeFilterRequest) models.HomeListResponse {
	s.mu.RLock()
	homes := s.homes
	s.mu.RUnlock()

	matched := FilterHomes(homes, filter)
	return models.HomeListResponse{Homes: matched, Total: len(matched)}
}

func (s *HomeService) GetHomeByID(id string) (models.Home, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, home := range s.homes {
		if home.ID == id {
			return home, nil
		}
	}
	return models.Home{}, models.ErrHomeNotFound
}

func (s *HomeService) CreateHome(ctx context.Context, home models.Home, identity models.Identity) (models.Home, error) {
	return s.HomeRepo.CreateHome(ctx, home, identity)
}

func (s *HomeService) DeleteHome(ctx context.Context, id string, identity models.Identity) error {
	return s.HomeRepo.DeleteHome(ctx, id, identity)
}
