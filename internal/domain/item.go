package domain

import "time"

type ItemType string

const (
	ItemTypeNote   ItemType = "note"
	ItemTypeTodo   ItemType = "todo"
	ItemTypeBudget ItemType = "budget"
)

// Default feed colours, one per item type.
const (
	NoteColor   = "#fff"
	TodoColor   = "#fff8e1"
	BudgetColor = "#e8f5e9"
)

// Item is the feed entry mirroring a note, todo or budget. There is exactly
// one Item per (Type, RefID) and it is only written together with its owner.
type Item struct {
	ID            int64     `json:"-"`
	Type          ItemType  `json:"type"`
	RefID         int64     `json:"id"`
	Title         string    `json:"title"`
	Preview       string    `json:"preview"`
	Color         string    `json:"color"`
	UpdatedAt     time.Time `json:"-"`
	ReminderCount int       `json:"reminderCount"`
}

type ItemDeletedEvent struct {
	Type ItemType `json:"type"`
	ID   int64    `json:"id"`
}

type SaveResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
