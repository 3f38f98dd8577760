package handler

import (
	"errors"
	"log"
	"net/http"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/service"
	"homefeed-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Save creates a note, or updates it when the body carries an existing id.
func (h *NoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	var (
		resp *domain.SaveResponse
		err  error
	)
	if req.ID > 0 {
		resp, err = h.service.Update(r.Context(), req.ID, &req)
	} else {
		resp, err = h.service.Create(r.Context(), &req)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w)
			return
		}
		log.Printf("failed to save note: %v", err)
		response.InternalError(w, "Failed to save note")
		return
	}

	response.Success(w, resp)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	note, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w)
			return
		}
		log.Printf("failed to get note %d: %v", id, err)
		response.InternalError(w, "Failed to get note")
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete note %d: %v", id, err)
		response.InternalError(w, "Failed to delete note")
		return
	}

	response.Success(w, domain.OKResponse{OK: true})
}
