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

type TodoHandler struct {
	service  *service.TodoService
	validate *validator.Validate
}

func NewTodoHandler(service *service.TodoService) *TodoHandler {
	return &TodoHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Save creates a todo, or updates it when the body carries an existing id.
func (h *TodoHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveTodoRequest
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
		log.Printf("failed to save todo: %v", err)
		response.InternalError(w, "Failed to save todo")
		return
	}

	response.Success(w, resp)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	todo, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w)
			return
		}
		log.Printf("failed to get todo %d: %v", id, err)
		response.InternalError(w, "Failed to get todo")
		return
	}

	response.Success(w, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete todo %d: %v", id, err)
		response.InternalError(w, "Failed to delete todo")
		return
	}

	response.Success(w, domain.OKResponse{OK: true})
}
