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

type ReminderHandler struct {
	service  *service.ReminderService
	validate *validator.Validate
}

func NewReminderHandler(service *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(r, "noteId")
	if !ok {
		response.Success(w, []*domain.ReminderResponse{})
		return
	}

	reminders, err := h.service.ListPending(r.Context(), noteID)
	if err != nil {
		log.Printf("failed to list reminders for note %d: %v", noteID, err)
		response.InternalError(w, "Failed to list reminders")
		return
	}

	response.Success(w, reminders)
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateReminderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if _, err := h.service.Create(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTime):
			response.BadRequest(w, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(w)
		default:
			log.Printf("failed to create reminder: %v", err)
			response.InternalError(w, "Failed to create reminder")
		}
		return
	}

	response.Success(w, domain.StatusResponse{Status: "success"})
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete reminder %d: %v", id, err)
		response.InternalError(w, "Failed to delete reminder")
		return
	}

	response.Success(w, domain.StatusResponse{Status: "success"})
}
