package service

import (
	"context"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/preview"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/websocket"
)

type BudgetService struct {
	repo      repository.BudgetRepository
	publisher FeedPublisher
	now       clock
}

func NewBudgetService(repo repository.BudgetRepository, publisher FeedPublisher) *BudgetService {
	return &BudgetService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create stores the budget as sent. Unparseable data is kept verbatim and
// only affects the preview.
func (s *BudgetService) Create(ctx context.Context, req *domain.SaveBudgetRequest) (*domain.SaveResponse, error) {
	budget := &domain.Budget{
		Title:     req.Title,
		Data:      string(req.Data),
		UpdatedAt: s.now(),
	}
	item := budgetItem(budget)

	if err := s.repo.Create(ctx, budget, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: budget.ID}, nil
}

func (s *BudgetService) Update(ctx context.Context, id int64, req *domain.SaveBudgetRequest) (*domain.SaveResponse, error) {
	budget := &domain.Budget{
		ID:        id,
		Title:     req.Title,
		Data:      string(req.Data),
		UpdatedAt: s.now(),
	}
	item := budgetItem(budget)

	if err := s.repo.Update(ctx, budget, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: budget.ID}, nil
}

func (s *BudgetService) GetByID(ctx context.Context, id int64) (*domain.BudgetResponse, error) {
	budget, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.BudgetResponse{
		Title: budget.Title,
		Data:  budget.Data,
	}, nil
}

func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(s.publisher, websocket.TypeItemDeleted, domain.ItemDeletedEvent{Type: domain.ItemTypeBudget, ID: id})
	return nil
}

func budgetItem(budget *domain.Budget) *domain.Item {
	return &domain.Item{
		Type:      domain.ItemTypeBudget,
		RefID:     budget.ID,
		Title:     budget.Title,
		Preview:   preview.Budget(budget.Data),
		Color:     domain.BudgetColor,
		UpdatedAt: budget.UpdatedAt,
	}
}
