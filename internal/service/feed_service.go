package service

import (
	"context"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/repository"
)

type FeedService struct {
	repo repository.ItemRepository
}

func NewFeedService(repo repository.ItemRepository) *FeedService {
	return &FeedService{repo: repo}
}

// List returns the home feed, most recently updated first.
func (s *FeedService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}
