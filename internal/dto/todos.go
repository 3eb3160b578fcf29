package dto

import "TASKHIVE_BACK-END/internal/models"

// CreateTodoRequest represents the request payload for creating a todo
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// UpdateTodoRequest represents the patch payload for a todo. Absent fields
// leave the stored value untouched.
type UpdateTodoRequest struct {
	Text        *string `json:"text,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// TodoResponse represents a single todo in API responses
type TodoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
	CompletedAt *int64 `json:"completedAt,omitempty"`
}

// TodoEnvelope wraps a single todo for detail endpoints
type TodoEnvelope struct {
	Todo TodoResponse `json:"todo"`
}

// TodoListResponse wraps the todo collection
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

// NewTodoResponse converts a model into its API shape
func NewTodoResponse(t *models.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID.String(),
		Text:        t.Text,
		IsCompleted: t.IsCompleted,
		CompletedAt: t.CompletedAt,
	}
}
