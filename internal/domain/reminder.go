package domain

import "time"

type Reminder struct {
	ID       int64     `json:"id"`
	NoteID   int64     `json:"note_id"`
	Label    string    `json:"label"`
	RemindAt time.Time `json:"remind_at"`
	IsSent   bool      `json:"is_sent"`
}

type CreateReminderRequest struct {
	NoteID int64  `json:"noteId" validate:"required,gt=0"`
	Label  string `json:"label" validate:"required"`
	Time   string `json:"time" validate:"required"`
}

type ReminderResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

// Accepted reminder time layouts. Layouts without a zone are read in the
// server's local time, which is what a browser datetime-local input sends.
var reminderTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func ParseReminderTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range reminderTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}
