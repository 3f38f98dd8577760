package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	TypeItemSaved    MessageType = "item_saved"
	TypeItemDeleted  MessageType = "item_deleted"
	TypeReminderSent MessageType = "reminder_sent"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type ReminderSentPayload struct {
	ID     int64 `json:"id"`
	NoteID int64 `json:"noteId"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Payload:   payloadBytes,
	}, nil
}

func (m *Message) UnmarshalPayload(v interface{}) error {
	if m.Payload == nil {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
