package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homefeed-server/internal/config"
	"homefeed-server/internal/domain"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSender(t *testing.T, timeout time.Duration) *WebPushSender {
	t.Helper()
	return newSenderWithSubject(t, timeout, "mailto:test@example.com")
}

func newSenderWithSubject(t *testing.T, timeout time.Duration, subject string) *WebPushSender {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return NewWebPushSender(config.PushConfig{
		VAPIDPublicKey:  publicKey,
		VAPIDPrivateKey: privateKey,
		Subject:         subject,
		Timeout:         timeout,
		TTL:             60,
	})
}

func newSubscription(t *testing.T, endpoint string) string {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]interface{}{
		"endpoint": endpoint,
		"keys": map[string]string{
			"p256dh": base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
			"auth":   base64.RawURLEncoding.EncodeToString(auth),
		},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestWebPushSender_Delivers(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := newSender(t, 5*time.Second)
	err := sender.Send(context.Background(), newSubscription(t, srv.URL+"/push/abc"), &Payload{
		Title: "📝 Note Reminder",
		Body:  "Pick up milk",
		URL:   "/note.html?id=1",
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/push/abc", got.URL.Path)
	assert.Equal(t, "aes128gcm", got.Header.Get("Content-Encoding"))
	assert.Equal(t, "60", got.Header.Get("TTL"))
	assert.True(t, strings.HasPrefix(got.Header.Get("Authorization"), "vapid "))
}

// vapidClaims decodes the JWT carried in a "vapid t=<jwt>, k=<key>" header.
func vapidClaims(t *testing.T, header string) map[string]interface{} {
	t.Helper()

	require.True(t, strings.HasPrefix(header, "vapid t="), "unexpected Authorization header %q", header)
	token := strings.TrimPrefix(header, "vapid t=")
	token, _, _ = strings.Cut(token, ",")

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &claims))
	return claims
}

func TestWebPushSender_SubjectClaim(t *testing.T) {
	tests := []struct {
		subject string
		wantSub string
	}{
		{subject: "mailto:admin@example.com", wantSub: "mailto:admin@example.com"},
		{subject: "admin@example.com", wantSub: "mailto:admin@example.com"},
		{subject: "https://example.com/contact", wantSub: "https://example.com/contact"},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			var auth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusCreated)
			}))
			defer srv.Close()

			sender := newSenderWithSubject(t, 5*time.Second, tt.subject)
			require.NoError(t, sender.Send(context.Background(), newSubscription(t, srv.URL), &Payload{Title: "t"}))

			assert.Equal(t, tt.wantSub, vapidClaims(t, auth)["sub"])
		})
	}
}

func TestWebPushSender_StatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		anyErr  bool
	}{
		{name: "accepted", status: http.StatusCreated},
		{name: "gone", status: http.StatusGone, wantErr: ErrSubscriptionGone},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrSubscriptionGone},
		{name: "server error", status: http.StatusInternalServerError, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newSender(t, 5*time.Second).Send(context.Background(), newSubscription(t, srv.URL), &Payload{Title: "t"})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrSubscriptionGone)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebPushSender_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(5 * time.Second):
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	err := newSender(t, 100*time.Millisecond).Send(context.Background(), newSubscription(t, srv.URL), &Payload{Title: "t"})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestWebPushSender_InvalidSubscription(t *testing.T) {
	sender := newSender(t, time.Second)

	err := sender.Send(context.Background(), "not json", &Payload{Title: "t"})
	assert.ErrorIs(t, err, domain.ErrInvalidSubscription)

	err = sender.Send(context.Background(), `{"keys":{}}`, &Payload{Title: "t"})
	assert.ErrorIs(t, err, domain.ErrInvalidSubscription)
}
