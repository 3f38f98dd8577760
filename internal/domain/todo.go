package domain

import "time"

// Todo keeps its tasks as the markup produced by the editor, typically a
// sequence of <li> elements.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tasks     string    `json:"tasks"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaveTodoRequest struct {
	ID    int64  `json:"id"`
	Title string `json:"title" validate:"required"`
	Tasks string `json:"tasks"`
}

type TodoResponse struct {
	Title string `json:"title"`
	Tasks string `json:"tasks"`
}
