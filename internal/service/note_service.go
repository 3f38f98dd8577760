package service

import (
	"context"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/preview"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/websocket"
)

type NoteService struct {
	repo      repository.NoteRepository
	publisher FeedPublisher
	now       clock
}

func NewNoteService(repo repository.NoteRepository, publisher FeedPublisher) *NoteService {
	return &NoteService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *NoteService) Create(ctx context.Context, req *domain.SaveNoteRequest) (*domain.SaveResponse, error) {
	note := &domain.Note{
		Title:     req.Title,
		Keywords:  req.Keywords,
		Content:   req.Content,
		UpdatedAt: s.now(),
	}
	item := noteItem(note)

	if err := s.repo.Create(ctx, note, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: note.ID}, nil
}

func (s *NoteService) Update(ctx context.Context, id int64, req *domain.SaveNoteRequest) (*domain.SaveResponse, error) {
	note := &domain.Note{
		ID:        id,
		Title:     req.Title,
		Keywords:  req.Keywords,
		Content:   req.Content,
		UpdatedAt: s.now(),
	}
	item := noteItem(note)

	if err := s.repo.Update(ctx, note, item); err != nil {
		return nil, err
	}

	publish(s.publisher, websocket.TypeItemSaved, item)
	return &domain.SaveResponse{OK: true, ID: note.ID}, nil
}

func (s *NoteService) GetByID(ctx context.Context, id int64) (*domain.NoteResponse, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.NoteResponse{
		Title:    note.Title,
		Keywords: note.Keywords,
		Content:  note.Content,
	}, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	publish(s.publisher, websocket.TypeItemDeleted, domain.ItemDeletedEvent{Type: domain.ItemTypeNote, ID: id})
	return nil
}

func noteItem(note *domain.Note) *domain.Item {
	return &domain.Item{
		Type:      domain.ItemTypeNote,
		RefID:     note.ID,
		Title:     note.Title,
		Preview:   preview.Note(note.Content),
		Color:     domain.NoteColor,
		UpdatedAt: note.UpdatedAt,
	}
}
