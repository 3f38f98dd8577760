package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/websocket"
)

func TestReminderService_CreateAndList(t *testing.T) {
	repo := newMockReminderRepo(1)
	service := NewReminderService(repo, nil, nil, time.UTC)
	ctx := context.Background()

	reminder, err := service.Create(ctx, &domain.CreateReminderRequest{NoteID: 1, Label: "Pick up milk", Time: "2026-10-17T18:30"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := time.Date(2026, 10, 17, 18, 30, 0, 0, time.UTC)
	if !reminder.RemindAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, reminder.RemindAt)
	}

	list, err := service.ListPending(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(list))
	}
	if list[0].Label != "Pick up milk" || list[0].Time != "2026-10-17T18:30:00Z" {
		t.Errorf("unexpected reminder %+v", list[0])
	}

	if err := service.Delete(ctx, list[0].ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, _ = service.ListPending(ctx, 1)
	if len(list) != 0 {
		t.Errorf("expected no reminders, got %d", len(list))
	}
}

func TestReminderService_CreateErrors(t *testing.T) {
	service := NewReminderService(newMockReminderRepo(1), nil, nil, time.UTC)

	_, err := service.Create(context.Background(), &domain.CreateReminderRequest{NoteID: 1, Label: "l", Time: "tomorrow"})
	if !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}

	_, err = service.Create(context.Background(), &domain.CreateReminderRequest{NoteID: 2, Label: "l", Time: "2026-10-17T18:30:00Z"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReminderService_PublishesNoteEntry(t *testing.T) {
	items := &stubItemRepo{items: []*domain.Item{
		{Type: domain.ItemTypeNote, RefID: 1, Title: "Groceries", ReminderCount: 1},
	}}
	publisher := &mockPublisher{}
	service := NewReminderService(newMockReminderRepo(1), items, publisher, time.UTC)
	ctx := context.Background()

	reminder, err := service.Create(ctx, &domain.CreateReminderRequest{NoteID: 1, Label: "l", Time: "2026-10-17T18:30"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := service.Delete(ctx, reminder.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// already gone; nothing to announce
	if err := service.Delete(ctx, reminder.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(publisher.events))
	}
	for _, e := range publisher.events {
		if e.Type != websocket.TypeItemSaved {
			t.Errorf("expected %s, got %s", websocket.TypeItemSaved, e.Type)
		}
		item, ok := e.Payload.(*domain.Item)
		if !ok || item.RefID != 1 || item.Type != domain.ItemTypeNote {
			t.Errorf("unexpected payload %+v", e.Payload)
		}
	}
}
