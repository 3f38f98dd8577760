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

type BudgetHandler struct {
	service  *service.BudgetService
	validate *validator.Validate
}

func NewBudgetHandler(service *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Save creates a budget, or updates it when the body carries an existing id.
func (h *BudgetHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveBudgetRequest
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
		log.Printf("failed to save budget: %v", err)
		response.InternalError(w, "Failed to save budget")
		return
	}

	response.Success(w, resp)
}

func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	budget, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w)
			return
		}
		log.Printf("failed to get budget %d: %v", id, err)
		response.InternalError(w, "Failed to get budget")
		return
	}

	response.Success(w, budget)
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("failed to delete budget %d: %v", id, err)
		response.InternalError(w, "Failed to delete budget")
		return
	}

	response.Success(w, domain.OKResponse{OK: true})
}
