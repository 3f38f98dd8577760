package handler

import (
	"log"
	"net/http"

	"homefeed-server/internal/service"
	"homefeed-server/pkg/response"
)

type HomeHandler struct {
	service *service.FeedService
}

func NewHomeHandler(service *service.FeedService) *HomeHandler {
	return &HomeHandler{service: service}
}

func (h *HomeHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("failed to list feed: %v", err)
		response.InternalError(w, "Failed to load feed")
		return
	}

	response.Success(w, items)
}
