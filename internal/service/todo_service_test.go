package service

import (
	"context"
	"testing"

	"homefeed-server/internal/domain"
)

func TestTodoService_CreateAndUpdate(t *testing.T) {
	repo := newMockTodoRepo()
	service := NewTodoService(repo, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, &domain.SaveTodoRequest{Title: "Weekend", Tasks: ""})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	item := repo.items.get(domain.ItemTypeTodo, created.ID)
	if item.Preview != "No tasks" {
		t.Errorf("expected empty todo preview, got %q", item.Preview)
	}
	if item.Color != domain.TodoColor {
		t.Errorf("expected todo colour, got %s", item.Color)
	}

	_, err = service.Update(ctx, created.ID, &domain.SaveTodoRequest{
		Title: "Weekend",
		Tasks: "<li>Laundry</li><li>Groceries</li>",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	item = repo.items.get(domain.ItemTypeTodo, created.ID)
	if item.Preview != "Laundry, Groceries" {
		t.Errorf("expected stripped preview, got %q", item.Preview)
	}

	todo, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if todo.Tasks != "<li>Laundry</li><li>Groceries</li>" {
		t.Errorf("expected markup to be stored verbatim, got %q", todo.Tasks)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.todos) != 0 || repo.items.count() != 0 {
		t.Error("expected todo and item to be deleted")
	}
}
