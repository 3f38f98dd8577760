package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Subscription struct {
	ID      int64  `json:"id"`
	SubData string `json:"sub_data"`
}

// PushSubscription is the descriptor produced by the browser's
// PushManager.subscribe().
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// CanonicalSubscription re-encodes a subscription body with sorted keys and
// no insignificant whitespace so that identical registrations compare equal.
func CanonicalSubscription(raw []byte) (string, error) {
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}

	var sub PushSubscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}
	if strings.TrimSpace(sub.Endpoint) == "" {
		return "", fmt.Errorf("%w: missing endpoint", ErrInvalidSubscription)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(canonical), nil
}
