package domain

import "time"

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Keywords  string    `json:"keywords"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveNoteRequest struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Keywords string `json:"keywords"`
	Content  string `json:"content"`
}

type NoteResponse struct {
	Title    string `json:"title"`
	Keywords string `json:"keywords"`
	Content  string `json:"content"`
}
