package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/service"
	"homefeed-server/pkg/response"
)

type SubscriptionHandler struct {
	service   *service.SubscriptionService
	publicKey string
}

func NewSubscriptionHandler(service *service.SubscriptionService, publicKey string) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:   service,
		publicKey: publicKey,
	}
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.service.Subscribe(r.Context(), body); err != nil {
		if errors.Is(err, domain.ErrInvalidSubscription) {
			response.BadRequest(w, err.Error())
			return
		}
		log.Printf("failed to store subscription: %v", err)
		response.InternalError(w, "Failed to subscribe")
		return
	}

	response.Success(w, domain.StatusResponse{Status: "success"})
}

// PublicKey exposes the VAPID application server key the browser needs for
// pushManager.subscribe.
func (h *SubscriptionHandler) PublicKey(w http.ResponseWriter, r *http.Request) {
	if h.publicKey == "" {
		response.Error(w, http.StatusNotFound, "Push notifications are not configured")
		return
	}

	response.Success(w, map[string]string{"publicKey": h.publicKey})
}
