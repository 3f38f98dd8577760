package service

import (
	"context"
	"log"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/websocket"
)

type ReminderService struct {
	repo      repository.ReminderRepository
	items     repository.ItemRepository
	publisher FeedPublisher
	location  *time.Location
}

func NewReminderService(repo repository.ReminderRepository, items repository.ItemRepository, publisher FeedPublisher, location *time.Location) *ReminderService {
	if location == nil {
		location = time.Local
	}
	return &ReminderService{
		repo:      repo,
		items:     items,
		publisher: publisher,
		location:  location,
	}
}

func (s *ReminderService) ListPending(ctx context.Context, noteID int64) ([]*domain.ReminderResponse, error) {
	reminders, err := s.repo.ListPending(ctx, noteID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		responses = append(responses, &domain.ReminderResponse{
			ID:    r.ID,
			Label: r.Label,
			Time:  r.RemindAt.In(s.location).Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *ReminderService) Create(ctx context.Context, req *domain.CreateReminderRequest) (*domain.Reminder, error) {
	remindAt, err := domain.ParseReminderTime(req.Time, s.location)
	if err != nil {
		return nil, err
	}

	reminder := &domain.Reminder{
		NoteID:   req.NoteID,
		Label:    req.Label,
		RemindAt: remindAt,
	}
	if err := s.repo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	s.publishNote(ctx, reminder.NoteID)
	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	noteID, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if noteID > 0 {
		s.publishNote(ctx, noteID)
	}
	return nil
}

// publishNote broadcasts the note's feed entry so open tabs pick up the new
// reminder count.
func (s *ReminderService) publishNote(ctx context.Context, noteID int64) {
	if s.publisher == nil || s.items == nil {
		return
	}

	item, err := s.items.FindByRef(ctx, domain.ItemTypeNote, noteID)
	if err != nil {
		log.Printf("failed to load feed entry for note %d: %v", noteID, err)
		return
	}
	s.publisher.Publish(websocket.TypeItemSaved, item)
}
