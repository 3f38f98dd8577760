// Package push delivers notification payloads to browser push endpoints.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"homefeed-server/internal/config"
	"homefeed-server/internal/domain"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// ErrSubscriptionGone is returned when the push service reports that the
// endpoint no longer exists. Such subscriptions can be dropped.
var ErrSubscriptionGone = errors.New("push subscription expired")

type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

type Sender interface {
	Send(ctx context.Context, subData string, payload *Payload) error
}

type WebPushSender struct {
	publicKey  string
	privateKey string
	subject    string
	ttl        int
	timeout    time.Duration
	client     *http.Client
}

func NewWebPushSender(cfg config.PushConfig) *WebPushSender {
	return &WebPushSender{
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		subject:    vapidSubscriber(cfg.Subject),
		ttl:        cfg.TTL,
		timeout:    cfg.Timeout,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *WebPushSender) Send(ctx context.Context, subData string, payload *Payload) error {
	var sub webpush.Subscription
	if err := json.Unmarshal([]byte(subData), &sub); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSubscription, err)
	}
	if sub.Endpoint == "" {
		return fmt.Errorf("%w: missing endpoint", domain.ErrInvalidSubscription)
	}

	message, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := webpush.SendNotificationWithContext(ctx, message, &sub, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subject,
		TTL:             s.ttl,
		Urgency:         webpush.UrgencyHigh,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
	})
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push service returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}

// vapidSubscriber strips a leading "mailto:" because webpush-go adds it to
// any subscriber that is not an https URL.
func vapidSubscriber(subject string) string {
	return strings.TrimPrefix(strings.TrimSpace(subject), "mailto:")
}

// LogSender stands in for WebPushSender when no VAPID keys are configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, subData string, payload *Payload) error {
	log.Printf("[Push] push disabled, dropping %q for %s", payload.Title, payload.URL)
	return nil
}
