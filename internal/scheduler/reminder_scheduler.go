// Package scheduler runs the background loop that turns due reminders into
// push notifications.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"homefeed-server/internal/push"
	"homefeed-server/internal/repository"
	"homefeed-server/internal/service"
	"homefeed-server/internal/websocket"
)

const reminderTitle = "📝 Note Reminder"

// ReminderScheduler polls for pending reminders whose time has come, pushes
// them to every registered subscription and marks them sent. Delivery is
// best effort: a reminder is marked sent once every subscription has been
// tried, whatever the outcome.
type ReminderScheduler struct {
	reminders     repository.ReminderRepository
	subscriptions repository.SubscriptionRepository
	sender        push.Sender
	publisher     service.FeedPublisher
	interval      time.Duration
	now           func() time.Time
}

func NewReminderScheduler(
	reminders repository.ReminderRepository,
	subscriptions repository.SubscriptionRepository,
	sender push.Sender,
	publisher service.FeedPublisher,
	interval time.Duration,
) *ReminderScheduler {
	return &ReminderScheduler{
		reminders:     reminders,
		subscriptions: subscriptions,
		sender:        sender,
		publisher:     publisher,
		interval:      interval,
		now:           time.Now,
	}
}

// Run blocks until ctx is cancelled, checking for due reminders once per
// interval. Errors are logged and never stop the loop.
func (s *ReminderScheduler) Run(ctx context.Context) {
	log.Printf("[Scheduler] reminder loop started (interval: %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] reminder loop stopped")
			return
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil {
				log.Printf("[Scheduler] reminder loop error: %v", err)
			}
		}
	}
}

// Tick processes one batch of due reminders and returns how many were
// marked sent.
func (s *ReminderScheduler) Tick(ctx context.Context) (sent int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in reminder tick: %v", r)
		}
	}()

	due, err := s.reminders.ListDue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	subs, err := s.subscriptions.List(ctx)
	if err != nil {
		return 0, err
	}

	gone := make(map[int64]bool)
	defer s.removeGone(ctx, gone)

	for _, reminder := range due {
		payload := &push.Payload{
			Title: reminderTitle,
			Body:  reminder.Label,
			URL:   fmt.Sprintf("/note.html?id=%d", reminder.NoteID),
		}

		for _, sub := range subs {
			if gone[sub.ID] {
				continue
			}

			err := s.sender.Send(ctx, sub.SubData, payload)
			switch {
			case errors.Is(err, push.ErrSubscriptionGone):
				log.Printf("[Push] subscription %d expired, removing", sub.ID)
				gone[sub.ID] = true
			case err != nil:
				log.Printf("[Push] push error for subscription %d: %v", sub.ID, err)
			}
		}

		changed, err := s.reminders.MarkSent(ctx, reminder.ID)
		if err != nil {
			return sent, err
		}
		if !changed {
			continue
		}

		sent++
		if s.publisher != nil {
			s.publisher.Publish(websocket.TypeReminderSent, websocket.ReminderSentPayload{
				ID:     reminder.ID,
				NoteID: reminder.NoteID,
			})
		}
	}

	if sent > 0 {
		log.Printf("[Scheduler] sent %d reminder(s) to %d subscription(s)", sent, len(subs))
	}
	return sent, nil
}

// removeGone drops subscriptions the push service reported as expired. It
// runs even when the batch stopped early.
func (s *ReminderScheduler) removeGone(ctx context.Context, gone map[int64]bool) {
	for id := range gone {
		if err := s.subscriptions.Delete(ctx, id); err != nil {
			log.Printf("[Push] failed to remove subscription %d: %v", id, err)
		}
	}
}
