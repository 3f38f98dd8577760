package service

import (
	"context"
	"log"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/repository"
)

type SubscriptionService struct {
	repo repository.SubscriptionRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repo: repo}
}

// Subscribe registers a browser push subscription. Submitting the same
// subscription again is a no-op.
func (s *SubscriptionService) Subscribe(ctx context.Context, raw []byte) error {
	subData, err := domain.CanonicalSubscription(raw)
	if err != nil {
		return err
	}

	created, err := s.repo.Create(ctx, subData)
	if err != nil {
		return err
	}

	if created {
		log.Printf("[Push] new subscription registered")
	}
	return nil
}
