package service

import (
	"context"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/preview"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/websocket"
)

type TodoService struct {
	repo      repository.TodoRepository
	publisher FeedPublisher
	now       clock
}

func NewTodoService(repo repository.TodoRepository, publisher FeedPublisher) *TodoService {
	return &TodoService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *TodoService) Create(ctx context.Context, req *domain.SaveTodoRequest) (*domain.SaveResponse, error) {
	todo := &domain.Todo{
		Title:     req.Title,
		Tasks:     req.Tasks,
		UpdatedAt: s.now(),
	}
	item := todoItem(todo)

	if err := s.repo.Create(ctx, todo, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: todo.ID}, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, req *domain.SaveTodoRequest) (*domain.SaveResponse, error) {
	todo := &domain.Todo{
		ID:        id,
		Title:     req.Title,
		Tasks:     req.Tasks,
		UpdatedAt: s.now(),
	}
	item := todoItem(todo)

	if err := s.repo.Update(ctx, todo, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: todo.ID}, nil
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (*domain.TodoResponse, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.TodoResponse{
		Title: todo.Title,
		Tasks: todo.Tasks,
	}, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(s.publisher, websocket.TypeItemDeleted, domain.ItemDeletedEvent{Type: domain.ItemTypeTodo, ID: id})
	return nil
}

func todoItem(todo *domain.Todo) *domain.Item {
	return &domain.Item{
		Type:      domain.ItemTypeTodo,
		RefID:     todo.ID,
		Title:     todo.Title,
		Preview:   preview.Todo(todo.Tasks),
		Color:     domain.TodoColor,
		UpdatedAt: todo.UpdatedAt,
	}
}
