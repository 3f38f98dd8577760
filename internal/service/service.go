package service

import (
	"time"

	"homefeed-server/internal/websocket"
)

// FeedPublisher receives feed change events. It is satisfied by the
// websocket manager and may be nil.
type FeedPublisher interface {
	Publish(msgType websocket.MessageType, payload interface{})
}

type clock func() time.Time

func publish(p FeedPublisher, msgType websocket.MessageType, payload interface{}) {
	if p != nil {
		p.Publish(msgType, payload)
	}
}
